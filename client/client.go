package client

import (
	"context"

	"github.com/engagekit/go-engage/xmlapi"
	"github.com/engagekit/go-engage/xmlmap"
)

// Engage timestamp layouts. Most operations take month-first 24-hour
// timestamps; mailing schedules use a 12-hour clock with meridiem.
const (
	dateTimeLayout = "01/02/2006 15:04:05"
	scheduleLayout = "01/02/2006 03:04:05 PM"
)

// Submitter is the submission protocol the operations ride on. It is
// satisfied by *xmlapi.Client and by test doubles.
type Submitter interface {
	// Submit encodes and sends the payload tree, returning the normalized
	// RESULT subtree on success.
	Submit(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error)

	// SubmitRaw sends a pre-encoded document unchanged.
	SubmitRaw(ctx context.Context, doc []byte) (*xmlmap.Value, error)

	// Login establishes a fresh session and returns the new token.
	Login(ctx context.Context) (string, error)
}

var _ Submitter = (*xmlapi.Client)(nil)

// Client exposes the Engage operations over a Submitter.
type Client struct {
	api Submitter
}

// New wraps an existing submitter, usually an *xmlapi.Client.
func New(api Submitter) *Client {
	return &Client{api: api}
}

// Connect builds the protocol client from cfg, performing the initial
// login when credentials are configured, and wraps it.
func Connect(ctx context.Context, cfg xmlapi.Config) (*Client, error) {
	api, err := xmlapi.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(api), nil
}

// Column is one NAME/VALUE pair of a recipient or contact operation.
// Order is preserved on the wire and repeated names are legal.
type Column struct {
	Name  string
	Value string
}

// Col builds a Column.
func Col(name, value string) Column {
	return Column{Name: name, Value: value}
}

// columnSeq renders columns as the repeated COLUMN elements Engage
// expects.
func columnSeq(cols []Column) *xmlmap.Value {
	items := make([]*xmlmap.Value, 0, len(cols))
	for _, col := range cols {
		items = append(items, xmlmap.NewMap().
			Set("NAME", xmlmap.String(col.Name)).
			Set("VALUE", xmlmap.String(col.Value)))
	}
	return xmlmap.Seq(items...)
}

// envelope wraps a single named operation in the Engage request frame.
func envelope(op string, body *xmlmap.Value) *xmlmap.Value {
	return xmlapi.NewEnvelope(xmlmap.NewMap().Set(op, body))
}

// Login forces a fresh session and returns the new token.
func (c *Client) Login(ctx context.Context) (string, error) {
	return c.api.Login(ctx)
}

// rawLogout is the fixed logout document; the operation has no parameters.
const rawLogout = "<Envelope><Body><Logout/></Body></Envelope>"

// Logout invalidates the current session on the server.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.api.SubmitRaw(ctx, []byte(rawLogout))
	return err
}
