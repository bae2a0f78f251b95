package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alberto-Moura/pedidos-backend/internal/orders"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
)

// FileName is the fixed download name of the exported order.
const FileName = "pedido_franqueado.csv"

const dateLayout = "2006-01-02"

// utf8BOM makes common spreadsheet tools read the file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{
	"codigo_franqueado",
	"condicao_pagamento",
	"data_faturamento",
	"numero_entrada",
	"codigo_produto",
	"tamanho_cor",
	"quantidade",
	"valor_total",
}

// WriteOrderCSV serialises order lines as semicolon-delimited, BOM-prefixed
// UTF-8. An empty line list produces a header-only file. All-or-nothing over
// an in-memory list; no partial-write recovery.
func WriteOrderCSV(w io.Writer, lines []orders.OrderLine) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, line := range lines {
		record := []string{
			line.FranchiseeCode,
			line.PaymentCondition.String(),
			line.OrderDate.Format(dateLayout),
			line.BatchID,
			line.ProductCode,
			line.SizeColor,
			strconv.Itoa(line.Quantity),
			line.TotalValue.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing line %s %s: %w", line.ProductCode, line.SizeColor, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadOrderCSV parses a file produced by WriteOrderCSV back into order
// lines. Quantities are reconstructed exactly, values up to currency
// rounding.
func ReadOrderCSV(r io.Reader, lines *[]orders.OrderLine) error {
	reader := csv.NewReader(skipBOM(r))
	reader.Comma = ';'
	reader.FieldsPerRecord = len(header)

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("missing header row")
	}

	for _, record := range records[1:] {
		orderDate, err := time.Parse(dateLayout, record[2])
		if err != nil {
			return fmt.Errorf("parsing order date %q: %w", record[2], err)
		}
		quantity, err := strconv.Atoi(record[6])
		if err != nil {
			return fmt.Errorf("parsing quantity %q: %w", record[6], err)
		}
		totalValue, err := decimal.NewFromString(record[7])
		if err != nil {
			return fmt.Errorf("parsing total value %q: %w", record[7], err)
		}
		*lines = append(*lines, orders.OrderLine{
			FranchiseeCode:   record[0],
			PaymentCondition: enums.PaymentCondition(record[1]),
			OrderDate:        orderDate,
			BatchID:          record[3],
			ProductCode:      record[4],
			SizeColor:        record[5],
			Quantity:         quantity,
			TotalValue:       totalValue,
		})
	}
	return nil
}

// skipBOM drops a leading UTF-8 byte-order marker if present.
func skipBOM(r io.Reader) io.Reader {
	buffered := make([]byte, 3)
	n, _ := io.ReadFull(r, buffered)
	if n == 3 && bytes.Equal(buffered, utf8BOM) {
		return r
	}
	return io.MultiReader(bytes.NewReader(buffered[:n]), r)
}
