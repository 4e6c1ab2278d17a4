package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engagekit/go-engage/xmlapi"
	"github.com/engagekit/go-engage/xmlmap"
)

// TestConnect_InvalidConfig verifies that configuration errors surface
// before any request is attempted.
func TestConnect_InvalidConfig(t *testing.T) {
	_, err := Connect(context.Background(), xmlapi.Config{})
	require.Error(t, err)
}

// TestConnect_NoCredentials verifies that Connect without credentials
// builds a client without logging in, for callers that seed a session
// later or only hit unauthenticated operations.
func TestConnect_NoCredentials(t *testing.T) {
	c, err := Connect(context.Background(), xmlapi.Config{
		Endpoint: "https://engage.invalid/XMLAPI",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
}

// TestClient_Login verifies that Login delegates to the submitter and
// returns the fresh token.
func TestClient_Login(t *testing.T) {
	mock := &MockSubmitter{
		LoginFunc: func(ctx context.Context) (string, error) {
			return "tok-123", nil
		},
	}
	c := New(mock)

	token, err := c.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, 1, mock.Logins)
}

// TestClient_Logout verifies the fixed logout document is sent verbatim.
func TestClient_Logout(t *testing.T) {
	mock := &MockSubmitter{}
	c := New(mock)

	err := c.Logout(context.Background())
	require.NoError(t, err)

	require.Len(t, mock.RawDocs, 1)
	assert.Equal(t, "<Envelope><Body><Logout/></Body></Envelope>", string(mock.RawDocs[0]))
}

// TestClient_LogoutError verifies submit failures surface to the caller.
func TestClient_LogoutError(t *testing.T) {
	wantErr := errors.New("session already gone")
	mock := &MockSubmitter{
		SubmitRawFunc: func(ctx context.Context, doc []byte) (*xmlmap.Value, error) {
			return nil, wantErr
		},
	}
	c := New(mock)

	err := c.Logout(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

// TestOperations_PropagateErrors verifies every operation hands submitter
// errors straight back instead of masking them.
func TestOperations_PropagateErrors(t *testing.T) {
	wantErr := errors.New("engage fault: errorid=128: not a member")

	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"SelectRecipientData", func(c *Client) error {
			_, err := c.SelectRecipientData(context.Background(), 1, "a@b.c")
			return err
		}},
		{"AddRecipient", func(c *Client) error {
			_, err := c.AddRecipient(context.Background(), 1, "a@b.c")
			return err
		}},
		{"UpdateRecipient", func(c *Client) error {
			_, err := c.UpdateRecipient(context.Background(), 1, "a@b.c", Col("x", "y"))
			return err
		}},
		{"RemoveRecipient", func(c *Client) error {
			return c.RemoveRecipient(context.Background(), 1, "a@b.c")
		}},
		{"OptOutRecipient", func(c *Client) error {
			return c.OptOutRecipient(context.Background(), 1, "a@b.c")
		}},
		{"AddContactToContactList", func(c *Client) error {
			_, err := c.AddContactToContactList(context.Background(), 1, 2)
			return err
		}},
		{"AddContactToProgram", func(c *Client) error {
			return c.AddContactToProgram(context.Background(), 1, 2)
		}},
		{"ImportList", func(c *Client) error {
			_, err := c.ImportList(context.Background(), "map.xml", "data.csv")
			return err
		}},
		{"ImportTable", func(c *Client) error {
			_, err := c.ImportTable(context.Background(), "map.xml", "data.csv")
			return err
		}},
		{"SetColumnValue", func(c *Client) error {
			return c.SetColumnValue(context.Background(), 1, "col", "val")
		}},
		{"ResetColumnValue", func(c *Client) error {
			return c.ResetColumnValue(context.Background(), 1, "col")
		}},
		{"CalculateQuery", func(c *Client) error {
			_, err := c.CalculateQuery(context.Background(), 1)
			return err
		}},
		{"PurgeData", func(c *Client) error {
			_, err := c.PurgeData(context.Background(), 1, 2)
			return err
		}},
		{"GetJobStatus", func(c *Client) error {
			_, err := c.GetJobStatus(context.Background(), "42")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockSubmitter{
				SubmitFunc: func(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error) {
					return nil, wantErr
				},
			}
			err := tt.call(New(mock))
			assert.ErrorIs(t, err, wantErr)
		})
	}
}
