// internal/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Config is minimal transport config. Exactly one of Address (TCP) or
// Device (RTU serial) must be set.
type Config struct {
	Address string // host:port
	Device  string // e.g. /dev/ttyUSB0
	Baud    int
	UnitID  uint8
	Timeout time.Duration
}

type handler interface {
	Connect() error
	Close() error
}

// Client is a single connection to one inverter. Requests are
// serialized: the poll loop and setting writes share it.
type Client struct {
	mu      sync.Mutex
	handler handler
	client  modbus.Client
	opened  bool
}

// New creates a client for the configured transport. The connection is
// opened lazily on first use and re-opened after a transport error on
// a later call; one attempt per call, no retry loops.
func New(cfg Config) (*Client, error) {
	switch {
	case cfg.Address != "" && cfg.Device != "":
		return nil, errors.New("modbus: tcp address and serial device are mutually exclusive")

	case cfg.Address != "":
		h := modbus.NewTCPClientHandler(cfg.Address)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		return &Client{handler: h, client: modbus.NewClient(h)}, nil

	case cfg.Device != "":
		h := modbus.NewRTUClientHandler(cfg.Device)
		h.BaudRate = cfg.Baud
		h.DataBits = 8
		h.Parity = "N"
		h.StopBits = 1
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		return &Client{handler: h, client: modbus.NewClient(h)}, nil

	default:
		return nil, errors.New("modbus: endpoint required")
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opened = false
	return c.handler.Close()
}

func (c *Client) ensureOpen() error {
	if c.opened {
		return nil
	}
	if err := c.handler.Connect(); err != nil {
		return err
	}
	c.opened = true
	return nil
}

// ReadInputRegisters reads qty input registers (FC 4).
func (c *Client) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	return c.read(addr, qty, func() ([]byte, error) {
		return c.client.ReadInputRegisters(addr, qty)
	})
}

// ReadHoldingRegisters reads qty holding registers (FC 3).
func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	return c.read(addr, qty, func() ([]byte, error) {
		return c.client.ReadHoldingRegisters(addr, qty)
	})
}

// WriteRegister writes one holding register (FC 6).
func (c *Client) WriteRegister(addr, value uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureOpen(); err != nil {
		return err
	}
	if _, err := c.client.WriteSingleRegister(addr, value); err != nil {
		c.opened = false
		return err
	}
	return nil
}

func (c *Client) read(addr, qty uint16, fn func() ([]byte, error)) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureOpen(); err != nil {
		return nil, err
	}

	raw, err := fn()
	if err != nil {
		// Force a reconnect on the next call; the cycle fails fast.
		c.opened = false
		return nil, err
	}
	if len(raw) != int(qty)*2 {
		return nil, fmt.Errorf("modbus: short response at %d: got %d bytes, want %d", addr, len(raw), qty*2)
	}
	return unpackRegisters(raw), nil
}

func unpackRegisters(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
