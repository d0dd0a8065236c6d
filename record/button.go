package record

// Buttons maps the two side keys, short and long press.
type Buttons struct {
	SK1Short ButtonFunction `yaml:"sk1_short"`
	SK1Long  ButtonFunction `yaml:"sk1_long"`
	SK2Short ButtonFunction `yaml:"sk2_short"`
	SK2Long  ButtonFunction `yaml:"sk2_long"`
}

// Window implements Record.
func (b *Buttons) Window() Window { return ButtonWindow }

// Encode implements Record. Bytes 4-7 are kept.
func (b *Buttons) Encode(base []byte) []byte {
	data := newBase(ButtonWindow, base)
	data[0] = byte(b.SK1Short)
	data[1] = byte(b.SK1Long)
	data[2] = byte(b.SK2Short)
	data[3] = byte(b.SK2Long)
	return data
}

// Decode implements Record. Unknown function indexes decode to ButtonNone.
func (b *Buttons) Decode(data []byte) {
	mustLen("buttons", ButtonWindow, data)

	b.SK1Short = buttonFunction(data[0])
	b.SK1Long = buttonFunction(data[1])
	b.SK2Short = buttonFunction(data[2])
	b.SK2Long = buttonFunction(data[3])
}

func buttonFunction(v byte) ButtonFunction {
	if int(v) >= ButtonFunctionCount {
		return ButtonNone
	}
	return ButtonFunction(v)
}
