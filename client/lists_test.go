package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engagekit/go-engage/xmlmap"
)

// jobIDResult builds the RESULT subtree the server returns for job
// producing operations.
func jobIDResult(id string) func(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error) {
	return func(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error) {
		return xmlmap.NewMap().Set("JOB_ID", xmlmap.String(id)), nil
	}
}

func TestImportList(t *testing.T) {
	mock := &MockSubmitter{SubmitFunc: jobIDResult("499887")}
	c := New(mock)

	jobID, err := c.ImportList(context.Background(), "list_import_map.xml", "list_create.csv")
	require.NoError(t, err)
	assert.Equal(t, "499887", jobID)

	want := "<Envelope><Body><ImportList>" +
		"<MAP_FILE>list_import_map.xml</MAP_FILE>" +
		"<SOURCE_FILE>list_create.csv</SOURCE_FILE>" +
		"</ImportList></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestImportTable(t *testing.T) {
	mock := &MockSubmitter{SubmitFunc: jobIDResult("499888")}
	c := New(mock)

	jobID, err := c.ImportTable(context.Background(), "table_import_map.xml", "table_create.csv")
	require.NoError(t, err)
	assert.Equal(t, "499888", jobID)

	want := "<Envelope><Body><ImportTable>" +
		"<MAP_FILE>table_import_map.xml</MAP_FILE>" +
		"<SOURCE_FILE>table_create.csv</SOURCE_FILE>" +
		"</ImportTable></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestSetColumnValue(t *testing.T) {
	mock := &MockSubmitter{}
	c := New(mock)

	err := c.SetColumnValue(context.Background(), 111111, "recency_sport_1", "Hiking")
	require.NoError(t, err)

	want := "<Envelope><Body><SetColumnValue>" +
		"<LIST_ID>111111</LIST_ID>" +
		"<COLUMN_NAME>recency_sport_1</COLUMN_NAME>" +
		"<ACTION>1</ACTION>" +
		"<COLUMN_VALUE>Hiking</COLUMN_VALUE>" +
		"</SetColumnValue></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestResetColumnValue(t *testing.T) {
	mock := &MockSubmitter{}
	c := New(mock)

	err := c.ResetColumnValue(context.Background(), 111111, "recency_sport_1")
	require.NoError(t, err)

	// A reset is the same operation with action 0 and no value.
	want := "<Envelope><Body><SetColumnValue>" +
		"<LIST_ID>111111</LIST_ID>" +
		"<COLUMN_NAME>recency_sport_1</COLUMN_NAME>" +
		"<ACTION>0</ACTION>" +
		"</SetColumnValue></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestCalculateQuery(t *testing.T) {
	mock := &MockSubmitter{SubmitFunc: jobIDResult("222222")}
	c := New(mock)

	jobID, err := c.CalculateQuery(context.Background(), 111111)
	require.NoError(t, err)
	assert.Equal(t, "222222", jobID)

	want := "<Envelope><Body><CalculateQuery>" +
		"<QUERY_ID>111111</QUERY_ID>" +
		"</CalculateQuery></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestPurgeData(t *testing.T) {
	mock := &MockSubmitter{SubmitFunc: jobIDResult("333333")}
	c := New(mock)

	jobID, err := c.PurgeData(context.Background(), 111111, 222222)
	require.NoError(t, err)
	assert.Equal(t, "333333", jobID)

	want := "<Envelope><Body><PurgeData>" +
		"<TARGET_ID>111111</TARGET_ID>" +
		"<SOURCE_ID>222222</SOURCE_ID>" +
		"</PurgeData></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestPurgeTable(t *testing.T) {
	mock := &MockSubmitter{SubmitFunc: jobIDResult("444444")}
	c := New(mock)

	deleteBefore := time.Date(2011, 7, 25, 12, 12, 11, 0, time.UTC)
	jobID, err := c.PurgeTable(context.Background(), 123456, deleteBefore)
	require.NoError(t, err)
	assert.Equal(t, "444444", jobID)

	want := "<Envelope><Body><PurgeTable>" +
		"<TABLE_ID>123456</TABLE_ID>" +
		"<DELETE_BEFORE>07/25/2011 12:12:11</DELETE_BEFORE>" +
		"</PurgeTable></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}

func TestPurgeTable_NoCutoff(t *testing.T) {
	mock := &MockSubmitter{SubmitFunc: jobIDResult("444445")}
	c := New(mock)

	_, err := c.PurgeTable(context.Background(), 123456, time.Time{})
	require.NoError(t, err)

	want := "<Envelope><Body><PurgeTable>" +
		"<TABLE_ID>123456</TABLE_ID>" +
		"</PurgeTable></Body></Envelope>"
	assert.Equal(t, want, payloadXML(t, mock.lastPayload()))
}
