// Codegen for currency_data.go.
// Run it from the repository root:
//
//	go run scripts/currency/codegen.go
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

// currencies is the master list, defined by ISO 4217.
// XXX and XTS always sort first so that XXX stays the zero value of
// the Currency type.
var currencies = []currency{
	{"No Currency", "XXX", "999", 0},
	{"Codes specifically reserved for testing purposes", "XTS", "963", 0},
	{"UAE Dirham", "AED", "784", 2},
	{"Australian Dollar", "AUD", "036", 2},
	{"Bahraini Dinar", "BHD", "048", 3},
	{"Brazilian Real", "BRL", "986", 2},
	{"Canadian Dollar", "CAD", "124", 2},
	{"Swiss Franc", "CHF", "756", 2},
	{"Yuan Renminbi", "CNY", "156", 2},
	{"Czech Koruna", "CZK", "203", 2},
	{"Danish Krone", "DKK", "208", 2},
	{"Euro", "EUR", "978", 2},
	{"Pound Sterling", "GBP", "826", 2},
	{"Hong Kong Dollar", "HKD", "344", 2},
	{"Rupiah", "IDR", "360", 2},
	{"New Israeli Sheqel", "ILS", "376", 2},
	{"Indian Rupee", "INR", "356", 2},
	{"Iceland Krona", "ISK", "352", 0},
	{"Jordanian Dinar", "JOD", "400", 3},
	{"Yen", "JPY", "392", 0},
	{"Won", "KRW", "410", 0},
	{"Kuwaiti Dinar", "KWD", "414", 3},
	{"Mexican Peso", "MXN", "484", 2},
	{"Malaysian Ringgit", "MYR", "458", 2},
	{"Norwegian Krone", "NOK", "578", 2},
	{"New Zealand Dollar", "NZD", "554", 2},
	{"Rial Omani", "OMR", "512", 3},
	{"Philippine Peso", "PHP", "608", 2},
	{"Zloty", "PLN", "985", 2},
	{"Russian Ruble", "RUB", "643", 2},
	{"Saudi Riyal", "SAR", "682", 2},
	{"Swedish Krona", "SEK", "752", 2},
	{"Singapore Dollar", "SGD", "702", 2},
	{"Baht", "THB", "764", 2},
	{"Tunisian Dinar", "TND", "788", 3},
	{"Turkish Lira", "TRY", "949", 2},
	{"New Taiwan Dollar", "TWD", "901", 2},
	{"US Dollar", "USD", "840", 2},
	{"Dong", "VND", "704", 0},
	{"Rand", "ZAR", "710", 2},
}

const codeTemplate = `// Code generated by scripts/currency/codegen.go; DO NOT EDIT.

package money

// Available currencies.
const (
{{- range $i, $c := .}}
	{{$c.Code}}{{if eq $i 0}} Currency = iota{{end}} // {{$c.Name}}
{{- end}}
)

// currLookup maps codes, lowercase codes, and ISO numbers to currencies.
var currLookup = map[string]Currency{
{{- range .}}
	"{{.Code}}": {{.Code}}, "{{lower .Code}}": {{.Code}}, "{{.Num}}": {{.Code}},
{{- end}}
}

// codeLookup maps currencies to their 3-letter codes.
var codeLookup = [...]string{
{{- range chunks .}}
	{{range .}}{{.Code}}: "{{.Code}}", {{end}}
{{- end}}
}

// numLookup maps currencies to their ISO numeric codes.
var numLookup = [...]string{
{{- range chunks .}}
	{{range .}}{{.Code}}: "{{.Num}}", {{end}}
{{- end}}
}

// scaleLookup maps currencies to the number of digits in their minor units.
var scaleLookup = [...]uint8{
{{- range chunks .}}
	{{range .}}{{.Code}}: {{.Scale}}, {{end}}
{{- end}}
}
`

func main() {
	currs := sortedCurrencies()

	code, err := generateGoCode(currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func sortedCurrencies() []currency {
	currs := make([]currency, len(currencies))
	copy(currs, currencies)
	less := func(i, j int) bool {
		a := currs[i].Code
		b := currs[j].Code
		switch {
		case a == "XXX" || b == "XXX":
			return a == "XXX"
		case a == "XTS" || b == "XTS":
			return a == "XTS"
		}
		return a < b
	}
	sort.Slice(currs, less)
	return currs
}

func generateGoCode(currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
		"chunks": func(currs []currency) [][]currency {
			const perLine = 6
			var res [][]currency
			for len(currs) > perLine {
				res = append(res, currs[:perLine])
				currs = currs[perLine:]
			}
			return append(res, currs)
		},
	}
	tmpl, err := template.New("currency_data").Funcs(fmap).Parse(codeTemplate)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
