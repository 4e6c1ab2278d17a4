package client

import (
	"context"
	"time"

	"github.com/engagekit/go-engage/xmlmap"
)

// Column actions understood by SetColumnValue on the server side.
const (
	columnActionReset  = 0
	columnActionUpdate = 1
)

// ImportList ingests a previously uploaded mapping file and source file
// into a list and returns the job id to poll.
func (c *Client) ImportList(ctx context.Context, mapFile, sourceFile string) (string, error) {
	op := xmlmap.NewMap().
		Set("MAP_FILE", xmlmap.String(mapFile)).
		Set("SOURCE_FILE", xmlmap.String(sourceFile))
	result, err := c.api.Submit(ctx, envelope("ImportList", op))
	if err != nil {
		return "", err
	}
	return result.Get("JOB_ID").Text(), nil
}

// ImportTable ingests a previously uploaded mapping file and source file
// into a relational table and returns the job id to poll.
func (c *Client) ImportTable(ctx context.Context, mapFile, sourceFile string) (string, error) {
	op := xmlmap.NewMap().
		Set("MAP_FILE", xmlmap.String(mapFile)).
		Set("SOURCE_FILE", xmlmap.String(sourceFile))
	result, err := c.api.Submit(ctx, envelope("ImportTable", op))
	if err != nil {
		return "", err
	}
	return result.Get("JOB_ID").Text(), nil
}

// SetColumnValue writes value into a column for every row of a database
// or query.
func (c *Client) SetColumnValue(ctx context.Context, listID int, column, value string) error {
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("COLUMN_NAME", xmlmap.String(column)).
		Set("ACTION", xmlmap.Int(columnActionUpdate)).
		Set("COLUMN_VALUE", xmlmap.String(value))
	_, err := c.api.Submit(ctx, envelope("SetColumnValue", op))
	return err
}

// ResetColumnValue clears a column back to its default for every row of a
// database or query.
func (c *Client) ResetColumnValue(ctx context.Context, listID int, column string) error {
	op := xmlmap.NewMap().
		Set("LIST_ID", xmlmap.Int(listID)).
		Set("COLUMN_NAME", xmlmap.String(column)).
		Set("ACTION", xmlmap.Int(columnActionReset))
	_, err := c.api.Submit(ctx, envelope("SetColumnValue", op))
	return err
}

// CalculateQuery recalculates a stored query and returns the job id.
func (c *Client) CalculateQuery(ctx context.Context, queryID int) (string, error) {
	op := xmlmap.NewMap().Set("QUERY_ID", xmlmap.Int(queryID))
	result, err := c.api.Submit(ctx, envelope("CalculateQuery", op))
	if err != nil {
		return "", err
	}
	return result.Get("JOB_ID").Text(), nil
}

// PurgeData removes the rows of the target database that were sourced
// from the given list and returns the job id.
func (c *Client) PurgeData(ctx context.Context, targetID, sourceID int) (string, error) {
	op := xmlmap.NewMap().
		Set("TARGET_ID", xmlmap.Int(targetID)).
		Set("SOURCE_ID", xmlmap.Int(sourceID))
	result, err := c.api.Submit(ctx, envelope("PurgeData", op))
	if err != nil {
		return "", err
	}
	return result.Get("JOB_ID").Text(), nil
}

// PurgeTable deletes relational table rows and returns the job id. A
// non-zero deleteBefore restricts the purge to rows older than that
// timestamp.
func (c *Client) PurgeTable(ctx context.Context, tableID int, deleteBefore time.Time) (string, error) {
	op := xmlmap.NewMap().Set("TABLE_ID", xmlmap.Int(tableID))
	if !deleteBefore.IsZero() {
		op.Set("DELETE_BEFORE", xmlmap.String(deleteBefore.Format(dateTimeLayout)))
	}
	result, err := c.api.Submit(ctx, envelope("PurgeTable", op))
	if err != nil {
		return "", err
	}
	return result.Get("JOB_ID").Text(), nil
}
