package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// timestampFormat is the fixed CSV timestamp rendering.
const timestampFormat = "2006/01/02 15:04:05"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeader lists every business field of an inquiry in the fixed export
// order, custom columns last.
var csvHeader = []string{
	"問合せID",
	"案件ID",
	"顧客Key",
	"オペレーターID",
	"カテゴリーID",
	"ステータスID",
	"問合せ内容",
	"対応内容",
	"初回受電日時",
	"更新日時",
	"最終更新者",
	"作成日時",
	"カスタム項目1",
	"カスタム項目2",
	"カスタム項目3",
	"カスタム項目4",
	"カスタム項目5",
	"カスタム項目6",
	"カスタム項目7",
	"カスタム項目8",
	"カスタム項目9",
	"カスタム項目10",
}

// ExportService CSV export of inquiry histories
type ExportService interface {
	WriteCSV(w io.Writer, inquiries []*domain.InquiryHistory) error
	ExportFile(path string, inquiries []*domain.InquiryHistory) error
	DefaultFileName(now time.Time) string
}

type exportService struct{}

// NewExportService creates a new ExportService
func NewExportService() ExportService {
	return &exportService{}
}

// WriteCSV writes UTF-8-with-BOM CSV: header first, one line per inquiry,
// CRLF record terminators. Fields containing a comma, double quote or line
// break are quoted with internal quotes doubled; field bytes are preserved
// verbatim, so a bare LF inside a value stays a bare LF. Absent values
// render as empty strings.
func (s *exportService) WriteCSV(w io.Writer, inquiries []*domain.InquiryHistory) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, csvHeader); err != nil {
		return err
	}
	for _, h := range inquiries {
		if err := writeRecord(bw, csvRow(h)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(escapeField(f)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}

// escapeField quotes a field containing a comma, double quote or line break,
// doubling internal quotes. The field content itself is never rewritten.
func escapeField(f string) string {
	if !strings.ContainsAny(f, ",\"\r\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

// ExportFile writes the CSV to a file, replacing any existing content
func (s *exportService) ExportFile(path string, inquiries []*domain.InquiryHistory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteCSV(f, inquiries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DefaultFileName returns the conventional export file name for a moment in time
func (s *exportService) DefaultFileName(now time.Time) string {
	return fmt.Sprintf("問合せ履歴_%s.csv", now.Format("20060102_150405"))
}

func csvRow(h *domain.InquiryHistory) []string {
	row := []string{
		strconv.Itoa(h.InquiryID),
		strconv.Itoa(h.ProjectID),
		strOrEmpty(h.CustomerKey),
		strconv.Itoa(h.OperatorID),
		intOrEmpty(h.CategoryID),
		intOrEmpty(h.StatusID),
		h.InquiryContent,
		strOrEmpty(h.ResponseContent),
		h.FirstReceivedDateTime.Format(timestampFormat),
		timeOrEmpty(h.UpdatedDateTime),
		h.UpdatedByName,
		h.CreatedAt.Format(timestampFormat),
	}
	for n := 1; n <= domain.NumCustomColumns; n++ {
		row = append(row, strOrEmpty(h.CustomCol(n)))
	}
	return row
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampFormat)
}
