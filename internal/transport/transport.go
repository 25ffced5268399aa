// Package transport handles the point-to-point TCP connection to a bulb.
package transport

import (
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/protocol"
)

type Connection struct {
	logger  *log.Logger
	address string
}

func NewConnection(logger *log.Logger, address string) *Connection {
	if !strings.Contains(address, ":") {
		address = fmt.Sprintf("%s:%d", address, constants.DevicePort)
	}
	return &Connection{logger: logger, address: address}
}

// Send transmits a framed command, appending the checksum byte when
// requested. Exceeding the timeout surfaces as an error, never a hang.
func (c *Connection) Send(command []byte, useChecksum bool, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", c.address, timeout)
	if err != nil {
		return fmt.Errorf("error connecting to bulb (%s): %w", c.address, err)
	}
	defer conn.Close()

	if useChecksum {
		command = protocol.AppendChecksum(command)
	}

	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	c.logger.Debugf("sending % x to %s", command, c.address)

	if _, err := conn.Write(command); err != nil {
		return fmt.Errorf("error writing command to bulb (%s): %w", c.address, err)
	}
	return nil
}

// GetState queries the bulb and returns its parsed state, or nil if the bulb
// did not answer within the timeout
func (c *Connection) GetState(timeout time.Duration) (*protocol.DeviceState, error) {
	conn, err := net.DialTimeout("tcp", c.address, timeout)
	if err != nil {
		return nil, fmt.Errorf("error connecting to bulb (%s): %w", c.address, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	query := protocol.AppendChecksum(protocol.StateQueryFrame())
	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf("error writing state query to bulb (%s): %w", c.address, err)
	}

	raw := make([]byte, 14)
	if _, err := io.ReadFull(conn, raw); err != nil {
		return nil, fmt.Errorf("error reading state from bulb (%s): %w", c.address, err)
	}

	state, err := protocol.ParseStateResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("bad state response from bulb (%s): %w", c.address, err)
	}

	c.logger.Debugf("read state from %s: %+v", c.address, state)
	return state, nil
}
