package client

import (
	"context"
	"errors"

	"github.com/engagekit/go-engage/xmlmap"
)

// createdFromOptedIn is the CREATED_FROM source code for recipients added
// or updated through the API.
const createdFromOptedIn = 2

// SelectRecipientData returns the stored column data for a recipient.
// Extra lookup columns narrow the match on keyed databases.
func (c *Client) SelectRecipientData(ctx context.Context, listID int, email string, cols ...Column) (*xmlmap.Value, error) {
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("EMAIL", xmlmap.String(email))
	if len(cols) > 0 {
		op.Set("COLUMN", columnSeq(cols))
	}
	return c.api.Submit(ctx, envelope("SelectRecipientData", op))
}

// AddRecipient adds a recipient to a list with optional extra column
// data. The email address always travels as the first COLUMN entry.
func (c *Client) AddRecipient(ctx context.Context, listID int, email string, data ...Column) (*xmlmap.Value, error) {
	cols := append([]Column{{Name: "EMAIL", Value: email}}, data...)
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("CREATED_FROM", xmlmap.Int(createdFromOptedIn)).
		Set("COLUMN", columnSeq(cols))
	return c.api.Submit(ctx, envelope("AddRecipient", op))
}

// UpdateRecipient rewrites columns of an existing recipient, keyed on the
// current email address. At least one column is required.
func (c *Client) UpdateRecipient(ctx context.Context, listID int, oldEmail string, data ...Column) (*xmlmap.Value, error) {
	if len(data) == 0 {
		return nil, errors.New("client: update requires at least one column")
	}
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("CREATED_FROM", xmlmap.Int(createdFromOptedIn)).
		Set("OLD_EMAIL", xmlmap.String(oldEmail)).
		Set("COLUMN", columnSeq(data))
	return c.api.Submit(ctx, envelope("UpdateRecipient", op))
}

// RemoveRecipient removes a recipient from a list.
func (c *Client) RemoveRecipient(ctx context.Context, listID int, email string) error {
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("EMAIL", xmlmap.String(email))
	_, err := c.api.Submit(ctx, envelope("RemoveRecipient", op))
	return err
}

// OptOutRecipient opts a recipient out of a list without removing the
// row.
func (c *Client) OptOutRecipient(ctx context.Context, listID int, email string) error {
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("EMAIL", xmlmap.String(email))
	_, err := c.api.Submit(ctx, envelope("OptOutRecipient", op))
	return err
}

// AddContactToContactList adds a contact to a contact list, either
// directly by id or by a column search. One of the two must be given;
// the id wins when both are.
func (c *Client) AddContactToContactList(ctx context.Context, contactListID, contactID int, search ...Column) (*xmlmap.Value, error) {
	op := xmlmap.NewMap().Set("CONTACT_LIST_ID", xmlmap.Int(contactListID))
	switch {
	case contactID != 0:
		op.Set("CONTACT_ID", xmlmap.Int(contactID))
	case len(search) > 0:
		op.Set("COLUMN", columnSeq(search))
	default:
		return nil, errors.New("client: contact id or search columns required")
	}
	return c.api.Submit(ctx, envelope("AddContactToContactList", op))
}

// AddContactToProgram enrolls a contact in an automation program.
func (c *Client) AddContactToProgram(ctx context.Context, programID, contactID int) error {
	op := xmlmap.NewMap().
		Set("PROGRAM_ID", xmlmap.Int(programID)).
		Set("CONTACT_ID", xmlmap.Int(contactID))
	_, err := c.api.Submit(ctx, envelope("AddContactToProgram", op))
	return err
}
