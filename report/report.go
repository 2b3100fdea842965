// Package report は学習データ・予測値・距離を固定幅の表として整形します。
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aross50/465LinRegression/metrics"
	"github.com/aross50/465LinRegression/pkg/errors"
)

// ColumnWidth は各列の幅（左寄せ・空白埋め）です。
const ColumnWidth = 15

// DefaultLabel は2行目ヘッダの予測列に表示される実装名です。
const DefaultLabel = "Go"

// Row は表の1行分のデータです。
type Row struct {
	X          float64
	Y          float64
	Prediction float64
	Distance   float64
}

// Option は Formatter の設定関数です。
type Option func(*Formatter)

// WithLabel は予測列ヘッダのラベルを変更します。
func WithLabel(label string) Option {
	return func(f *Formatter) {
		f.label = label
	}
}

// Formatter renders the comparison table.
type Formatter struct {
	label string
}

// NewFormatter は Formatter を作成します。
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{label: DefaultLabel}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Rows は入力を行に組み立てます。距離は metrics.Distance で再計算します。
func Rows(x, y, predictions []float64) ([]Row, error) {
	if len(y) != len(x) {
		return nil, errors.NewDimensionError("report.Rows", len(x), len(y), 0)
	}
	distances, err := metrics.Distance(y, predictions)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(x))
	for i := range x {
		rows[i] = Row{X: x[i], Y: y[i], Prediction: predictions[i], Distance: distances[i]}
	}
	return rows, nil
}

// Format は表全体を文字列として返します。各行は改行で終わります。
func (f *Formatter) Format(x, y, predictions []float64) (string, error) {
	var sb strings.Builder
	if err := f.Write(&sb, x, y, predictions); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write は表を w に書き出します。
func (f *Formatter) Write(w io.Writer, x, y, predictions []float64) error {
	rows, err := Rows(x, y, predictions)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, cells("Training data", "Prediction", "Euclidean distance"))
	fmt.Fprintln(bw, cells("(x, y)", f.label, ""))
	for _, r := range rows {
		fmt.Fprintln(bw, formatRow(r))
	}
	return errors.Wrap(bw.Flush(), "writing report")
}

// Format は既定ラベルで表を整形します。
func Format(x, y, predictions []float64) (string, error) {
	return NewFormatter().Format(x, y, predictions)
}

func cells(values ...string) string {
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%-*s", ColumnWidth, v)
	}
	return sb.String()
}

func formatRow(r Row) string {
	point := fmt.Sprintf("(%.1f, %.1f)", r.X, r.Y)
	return fmt.Sprintf("%-*s%-*.5f%-*.5f", ColumnWidth, point, ColumnWidth, r.Prediction, ColumnWidth, r.Distance)
}

// ParseTable は Write が出力した表を読み戻します。ヘッダ2行は読み飛ばします。
// 値は表示精度（x, y は小数1桁、その他は5桁）に丸められています。
func ParseTable(r io.Reader) ([]Row, error) {
	scanner := bufio.NewScanner(r)
	var rows []Row
	line := 0
	for scanner.Scan() {
		line++
		if line <= 2 {
			continue
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		row, err := parseRow(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading report")
	}
	return rows, nil
}

func parseRow(text string) (Row, error) {
	open := strings.Index(text, "(")
	closing := strings.Index(text, ")")
	if open < 0 || closing < open {
		return Row{}, errors.NewValueError("report.ParseTable", "missing (x, y) cell: "+strconv.Quote(text))
	}
	point := strings.Split(text[open+1:closing], ",")
	rest := strings.Fields(text[closing+1:])
	if len(point) != 2 || len(rest) != 2 {
		return Row{}, errors.NewValueError("report.ParseTable", "malformed row: "+strconv.Quote(text))
	}

	values := make([]float64, 0, 4)
	for _, s := range append(point, rest...) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Row{}, errors.NewValueError("report.ParseTable", "non-numeric cell "+strconv.Quote(s))
		}
		values = append(values, v)
	}
	return Row{X: values[0], Y: values[1], Prediction: values[2], Distance: values[3]}, nil
}
