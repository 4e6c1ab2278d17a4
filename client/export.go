package client

import (
	"context"
	"errors"
	"time"

	"github.com/engagekit/go-engage/xmlmap"
)

// exportFormatCSV selects comma-separated output for raw data exports.
const exportFormatCSV = 0

// defaultExportFileName names the export archive when the caller does not.
const defaultExportFileName = "EngageRawRecipientDataExport"

// ExportOptions selects what RawRecipientDataExport extracts.
type ExportOptions struct {
	// ListIDs are the databases or queries to export. At least one is
	// required; each id becomes its own LIST_ID element.
	ListIDs []int

	// Start and End bound the event window.
	Start time.Time
	End   time.Time

	// Columns restricts the export to the named recipient columns.
	Columns []string

	// FileName overrides the export file name stem.
	FileName string
}

// ExportJob identifies a requested export.
type ExportJob struct {
	// JobID polls the export progress via GetJobStatus.
	JobID string

	// FilePath is where the archive lands in the FTP staging area.
	FilePath string

	// Result is the full RESULT subtree.
	Result *xmlmap.Value
}

// RawRecipientDataExport requests a raw event export covering every
// tracked event type (sends, opens, clicks, opt-outs, bounces, blocks and
// abuse reports), written as CSV and moved to the FTP staging area.
func (c *Client) RawRecipientDataExport(ctx context.Context, opts ExportOptions) (*ExportJob, error) {
	if len(opts.ListIDs) == 0 {
		return nil, errors.New("client: export requires at least one list id")
	}
	fileName := opts.FileName
	if fileName == "" {
		fileName = defaultExportFileName
	}

	ids := make([]*xmlmap.Value, 0, len(opts.ListIDs))
	for _, id := range opts.ListIDs {
		ids = append(ids, xmlmap.Int(id))
	}

	op := xmlmap.NewMap().
		Set("EVENT_DATE_START", xmlmap.String(opts.Start.Format(dateTimeLayout))).
		Set("EVENT_DATE_END", xmlmap.String(opts.End.Format(dateTimeLayout))).
		Set("EXPORT_FORMAT", xmlmap.Int(exportFormatCSV)).
		Set("LIST_ID", xmlmap.Seq(ids...)).
		Set("EXCLUDE_DELETED", xmlmap.Int(1)).
		Set("INCLUDE_CHILDREN", xmlmap.Int(1)).
		Set("OPENS", xmlmap.Int(1)).
		Set("CLICKS", xmlmap.Int(1)).
		Set("SENT", xmlmap.Int(1)).
		Set("OPTOUTS", xmlmap.Int(1)).
		Set("SOFT_BOUNCES", xmlmap.Int(1)).
		Set("HARD_BOUNCES", xmlmap.Int(1)).
		Set("EXPORT_FILE_NAME", xmlmap.String(fileName)).
		Set("MOVE_TO_FTP", xmlmap.Int(1)).
		Set("MAIL_BLOCKS", xmlmap.Int(1)).
		Set("REPLY_ABUSE", xmlmap.Int(1))
	if len(opts.Columns) > 0 {
		cols := make([]*xmlmap.Value, 0, len(opts.Columns))
		for _, name := range opts.Columns {
			cols = append(cols, xmlmap.NewMap().Set("NAME", xmlmap.String(name)))
		}
		op.Set("COLUMNS", xmlmap.NewMap().Set("COLUMN", xmlmap.Seq(cols...)))
	}

	result, err := c.api.Submit(ctx, envelope("RawRecipientDataExport", op))
	if err != nil {
		return nil, err
	}
	mailing := result.Get("MAILING")
	return &ExportJob{
		JobID:    mailing.Get("JOB_ID").Text(),
		FilePath: mailing.Get("FILE_PATH").Text(),
		Result:   result,
	}, nil
}
