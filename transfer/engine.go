package transfer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/atomic"

	"github.com/moffa90/go-radiocps/protocol"
)

// Engine uploads EEPROM images to the radio over a serial port.
//
// Engine is safe for concurrent use after initialization, but the radio
// accepts one transfer at a time: callers must not start a second transfer
// on the same port while one is active.
type Engine struct {
	open   OpenFunc
	config Config
}

// New creates a new Engine that opens its port with open for every transfer.
//
// Example:
//
//	eng := transfer.New(serialport.Opener("/dev/ttyUSB0", 115200),
//	    transfer.WithVariant(protocol.VariantUpgrade),
//	    transfer.WithProgressCallback(progressFunc),
//	)
func New(open OpenFunc, opts ...Option) *Engine {
	if open == nil {
		panic("open function cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		open:   open,
		config: cfg,
	}
}

// Variant returns the protocol variant the engine speaks.
func (e *Engine) Variant() protocol.Variant {
	return e.config.Variant
}

// Transfer is a handle on one running transfer.
type Transfer struct {
	events    chan Progress
	done      chan struct{}
	cancelled atomic.Bool
	active    atomic.Bool
	state     atomic.Int32
	err       error
}

// Events returns the channel of progress events. It is buffered to hold
// every event of the transfer and is closed when the transfer ends.
func (t *Transfer) Events() <-chan Progress {
	return t.events
}

// Cancel asks the transfer to stop at the next chunk boundary.
func (t *Transfer) Cancel() {
	t.cancelled.Store(true)
}

// Active reports whether the transfer goroutine is still running.
func (t *Transfer) Active() bool {
	return t.active.Load()
}

// State returns the current engine state.
func (t *Transfer) State() State {
	return State(t.state.Load())
}

// Done is closed when the transfer ends.
func (t *Transfer) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the transfer ends and returns its error: nil on
// success, ErrCancelled after cancellation, the failure cause otherwise.
func (t *Transfer) Wait() error {
	<-t.done
	return t.err
}

func (t *Transfer) setState(s State) {
	t.state.Store(int32(s))
}

func (t *Transfer) cancelRequested(ctx context.Context) bool {
	return t.cancelled.Load() || ctx.Err() != nil
}

// Start runs a transfer in its own goroutine and returns its handle.
//
// The engine reads image in place; the caller must not modify it until the
// transfer ends. Cancelling ctx has the same effect as Transfer.Cancel.
//
// Example:
//
//	t := eng.Start(ctx, transfer.DirectionWrite, st.Image)
//	for p := range t.Events() {
//	    fmt.Printf("%.0f%% %s\n", p.Percentage, p.Status)
//	}
//	err := t.Wait()
func (e *Engine) Start(ctx context.Context, dir Direction, image []byte) *Transfer {
	var chunks []protocol.Chunk
	var planErr error
	if dir == DirectionWrite {
		chunks, planErr = e.plan(image)
	}

	t := &Transfer{
		events: make(chan Progress, len(chunks)+2),
		done:   make(chan struct{}),
	}
	t.active.Store(true)

	go func() {
		err := e.run(ctx, t, dir, image, chunks, planErr)
		t.err = err
		t.active.Store(false)
		close(t.events)
		close(t.done)
	}()

	return t
}

// Write uploads image and blocks until the transfer ends.
func (e *Engine) Write(ctx context.Context, image []byte) error {
	return e.Start(ctx, DirectionWrite, image).Wait()
}

// Read downloads the image from the radio. The radio firmware has no read
// command, so Read reports one failure event and returns ErrReadUnsupported.
func (e *Engine) Read(ctx context.Context) ([]byte, error) {
	return nil, e.Start(ctx, DirectionRead, nil).Wait()
}

// plan computes the chunk plan for image.
func (e *Engine) plan(image []byte) ([]protocol.Chunk, error) {
	v := e.config.Variant
	end, err := v.PayloadEnd(image)
	if err != nil {
		return nil, err
	}
	return protocol.PlanChunks(0, end, v.ChunkSize), nil
}

func (e *Engine) run(ctx context.Context, t *Transfer, dir Direction, image []byte, chunks []protocol.Chunk, planErr error) error {
	start := time.Now()

	if dir == DirectionRead {
		e.fail(t, start, e.config.Messages.ReadUnsupported, ErrReadUnsupported)
		return ErrReadUnsupported
	}

	if planErr != nil {
		err := fmt.Errorf("plan payload: %w", planErr)
		e.fail(t, start, e.config.Messages.CommError, err)
		return err
	}

	t.setState(StateHandshaking)
	port, err := e.open(PortConfig{
		ReadTimeout:  e.config.readTimeout(),
		WriteTimeout: e.config.writeTimeout(),
	})
	if err != nil {
		oe := &OpenError{Err: err}
		e.fail(t, start, e.config.Messages.OpenPortError, oe)
		return oe
	}

	s := &session{
		engine:  e,
		t:       t,
		port:    port,
		variant: e.config.Variant,
		start:   start,
	}
	return s.upload(ctx, image, chunks)
}

// fail closes out a transfer with a single failure event.
func (e *Engine) fail(t *Transfer, start time.Time, status string, err error) {
	t.setState(StateClosed)
	e.logError("transfer failed", "error", err.Error())
	e.emit(t, Progress{
		Phase:       StateClosed,
		ElapsedTime: time.Since(start),
		Status:      status,
		Failed:      true,
		Closed:      true,
		Err:         err,
	})
}

// emit delivers p to the callback and the event channel.
func (e *Engine) emit(t *Transfer, p Progress) {
	if e.config.ProgressCallback != nil {
		e.config.ProgressCallback(p)
	}
	t.events <- p
}

// logDebug logs a debug message if a logger is configured.
func (e *Engine) logDebug(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (e *Engine) logInfo(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (e *Engine) logError(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Error(msg, keysAndValues...)
	}
}

// session is one open port for the duration of a transfer.
type session struct {
	engine  *Engine
	t       *Transfer
	port    Port
	variant protocol.Variant
	start   time.Time
}

func (s *session) upload(ctx context.Context, image []byte, chunks []protocol.Chunk) error {
	s.engine.logInfo("transfer started",
		"variant", s.variant.Name,
		"chunks", len(chunks),
	)

	if err := s.handshake(ctx, image); err != nil {
		if errors.Is(err, ErrCancelled) {
			return s.abort()
		}
		return s.fail(fmt.Errorf("handshake: %w", err))
	}

	s.t.setState(StateUploading)

	var sum protocol.Sum32
	written := 0
	for i, c := range chunks {
		if s.t.cancelRequested(ctx) {
			return s.abort()
		}

		payload := s.variant.Payload(image, c)
		sendPayload := s.send
		if s.variant.AddressHeader {
			if err := s.send(protocol.BuildChunkHeader(c.Addr)); err != nil {
				return s.fail(fmt.Errorf("chunk %d header: %w", i, err))
			}
			sendPayload = s.write
		}
		if err := sendPayload(payload); err != nil {
			return s.fail(fmt.Errorf("chunk %d: %w", i, err))
		}
		if s.variant.Checksum {
			sum.Add(payload)
		}
		if err := s.expectAck(fmt.Sprintf("chunk %d", i)); err != nil {
			return s.fail(err)
		}

		written += c.Len
		s.engine.logDebug("chunk acknowledged",
			"addr", fmt.Sprintf("0x%06X", c.Addr),
			"len", c.Len,
		)
		s.engine.emit(s.t, Progress{
			Phase:        StateUploading,
			Chunk:        i + 1,
			TotalChunks:  len(chunks),
			Percentage:   100 * float64(i+1) / float64(len(chunks)),
			Address:      c.Addr,
			BytesWritten: written,
			ElapsedTime:  time.Since(s.start),
			Status:       strconv.Itoa(c.Addr),
		})
	}

	s.t.setState(StateFinalizing)
	if err := s.send(protocol.BuildEndFrame(s.variant, sum.Value())); err != nil {
		return s.fail(fmt.Errorf("end: %w", err))
	}
	if err := s.expectAck("end"); err != nil {
		return s.fail(err)
	}

	s.close()
	s.t.setState(StateClosed)
	s.engine.emit(s.t, Progress{
		Phase:        StateClosed,
		Chunk:        len(chunks),
		TotalChunks:  len(chunks),
		Percentage:   100,
		BytesWritten: written,
		ElapsedTime:  time.Since(s.start),
		Status:       s.engine.config.Messages.Success,
		Closed:       true,
	})

	s.engine.logInfo("transfer complete",
		"bytes", written,
		"checksum", fmt.Sprintf("0x%08X", sum.Value()),
		"elapsed", time.Since(s.start).String(),
	)
	return nil
}

func (s *session) handshake(ctx context.Context, image []byte) error {
	switch s.variant.Handshake {
	case protocol.HandshakeWake:
		return s.handshakeWake(ctx)
	case protocol.HandshakeDownload:
		return s.handshakeDownload(image)
	default:
		return fmt.Errorf("unknown handshake %v", s.variant.Handshake)
	}
}

// handshakeWake sends wake frames until the radio answers with any byte,
// then the font command.
func (s *session) handshakeWake(ctx context.Context) error {
	woke := false
	buf := make([]byte, 1)
	for attempt := 1; attempt <= s.variant.WakeAttempts; attempt++ {
		if s.t.cancelRequested(ctx) {
			return ErrCancelled
		}
		if err := s.send(protocol.BuildWakeFrame()); err != nil {
			return fmt.Errorf("wake: %w", err)
		}
		sleep(s.variant.WakeInterval)

		n, err := s.port.Read(buf)
		if err != nil && !IsTimeout(err) {
			return fmt.Errorf("wake: read: %w", err)
		}
		if n > 0 {
			s.engine.logDebug("radio awake", "attempts", attempt)
			woke = true
			break
		}
	}
	if !woke {
		return &TimeoutError{
			Operation: "wake",
			Want:      1,
			After:     s.engine.config.readTimeout(),
		}
	}
	sleep(s.variant.WakeInterval)

	if err := s.send(protocol.BuildFontCommand()); err != nil {
		return fmt.Errorf("font command: %w", err)
	}
	// The reply to the font command carries no status.
	reply, err := s.readExact("font command", 1)
	if err != nil {
		return err
	}
	s.engine.logDebug("font command answered", "reply", fmt.Sprintf("0x%02X", reply[0]))
	return nil
}

// handshakeDownload checks the hardware signature, acknowledges it, erases
// and enters programming.
func (s *session) handshakeDownload(image []byte) error {
	want := protocol.Signature(image)
	if err := s.send(protocol.CmdDownload); err != nil {
		return fmt.Errorf("download: %w", err)
	}
	reply, err := s.readExact("download", len(want))
	if err != nil {
		return err
	}
	if err := protocol.CheckSignature(reply, want); err != nil {
		return err
	}
	s.engine.logDebug("signature accepted", "signature", string(reply))

	steps := []struct {
		op    string
		frame []byte
	}{
		{"signature ack", []byte{protocol.Ack}},
		{"erase", protocol.BuildEraseFrame()},
		{"program", protocol.CmdProgram},
	}
	for _, step := range steps {
		if err := s.send(step.frame); err != nil {
			return fmt.Errorf("%s: %w", step.op, err)
		}
		if err := s.expectAck(step.op); err != nil {
			return err
		}
	}
	return nil
}

// abort sends the END sentinel, makes one best-effort read and closes the
// port. No event is emitted.
func (s *session) abort() error {
	if err := s.send(protocol.BuildCancelFrame()); err != nil {
		s.engine.logDebug("send cancel frame", "error", err.Error())
	} else if _, err := s.readExact("cancel", 1); err != nil {
		s.engine.logDebug("cancel reply", "error", err.Error())
	}
	s.close()
	s.t.setState(StateCancelled)
	s.engine.logInfo("transfer cancelled", "elapsed", time.Since(s.start).String())
	return ErrCancelled
}

func (s *session) fail(err error) error {
	s.close()
	s.engine.fail(s.t, s.start, s.engine.config.Messages.CommError, err)
	return err
}

func (s *session) close() {
	if err := s.port.Close(); err != nil {
		s.engine.logDebug("close port", "error", err.Error())
	}
}

// send discards pending input and writes frame.
func (s *session) send(frame []byte) error {
	if r, ok := s.port.(InputResetter); ok {
		if err := r.ResetInputBuffer(); err != nil {
			return fmt.Errorf("reset input: %w", err)
		}
	}
	return s.write(frame)
}

// write sends frame in the variant's write fragments. A chunk payload
// continues the frame its address header started, so it goes through write
// rather than send.
func (s *session) write(frame []byte) error {
	for _, part := range protocol.Fragments(frame, s.variant.FragmentSize) {
		n, err := s.port.Write(part)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if n != len(part) {
			return fmt.Errorf("short write: %d of %d bytes", n, len(part))
		}
	}
	return nil
}

func (s *session) expectAck(op string) error {
	reply, err := s.readExact(op, 1)
	if err != nil {
		return err
	}
	return protocol.CheckAck(op, reply)
}

// readExact reads n bytes. A read that returns nothing times out; a reply
// that arrives in pieces gets ReadRetries extra reads to complete.
func (s *session) readExact(op string, n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for attempt := 0; got < n; attempt++ {
		m, err := s.port.Read(buf[got:])
		got += m
		if err != nil {
			if IsTimeout(err) {
				return buf[:got], s.timeout(op, got, n)
			}
			return buf[:got], fmt.Errorf("%s: read: %w", op, err)
		}
		if got >= n {
			break
		}
		if m == 0 || attempt >= s.engine.config.ReadRetries {
			return buf[:got], s.timeout(op, got, n)
		}
		sleep(s.engine.config.RetryDelay)
	}
	return buf, nil
}

func (s *session) timeout(op string, got, want int) error {
	return &TimeoutError{
		Operation: op,
		Got:       got,
		Want:      want,
		After:     s.engine.config.readTimeout(),
	}
}

func sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
