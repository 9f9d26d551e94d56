package lib

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strings"
	"text/template"
)

var solverTemplateString = `package {{.Package}}

func init() {
	mustRegister({{.Day}}, New{{.TypeName}})
}

type {{.TypeName}} struct {
	lines []string
}

func New{{.TypeName}}(input string) (Solver, error) {
	return &{{.TypeName}}{lines: inputLines(input)}, nil
}

func (d *{{.TypeName}}) Part1() string {
	return ""
}

func (d *{{.TypeName}}) Part2() string {
	return ""
}
`

var numberSequence = regexp.MustCompile(`([a-zA-Z])(\d+)([a-zA-Z]?)`)
var numberReplacement = []byte(`$1 $2 $3`)

var solverTemplate = template.Must(template.New("solver").Parse(solverTemplateString))

type scaffoldViewModel struct {
	Package  string
	Day      int
	TypeName string
}

// Scaffold writes a stub solver for day into srcDir and creates the day's
// input directory with empty input and sample files. Existing files are
// left alone.
func Scaffold(srcDir string, inputsDir string, day int) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("day %d is out of range 1-25", day)
	}
	if _, err := Lookup(day); err == nil {
		return fmt.Errorf("day %02d already has a solver", day)
	}

	dest := path.Join(srcDir, fmt.Sprintf("day%02d.go", day))
	err := createExclusive(dest, func(w io.Writer) error {
		return writeSolverCode(w, "lib", day)
	})
	if err != nil {
		return err
	}

	dayDir := path.Join(inputsDir, fmt.Sprintf("%02d", day))
	if err := os.MkdirAll(dayDir, 0o755); err != nil {
		return err
	}
	for _, fileName := range []string{inputFileName, sampleFileName} {
		err := createExclusive(path.Join(dayDir, fileName), func(io.Writer) error { return nil })
		if err != nil {
			return err
		}
	}
	return nil
}

func createExclusive(filePath string, write func(io.Writer) error) error {
	fileWriter, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}

	err = write(fileWriter)
	if closeErr := fileWriter.Close(); err == nil {
		err = closeErr
	}
	return err
}

func writeSolverCode(writer io.Writer, pkg string, day int) error {
	vm := scaffoldViewModel{
		Package:  pkg,
		Day:      day,
		TypeName: pascalCase(fmt.Sprintf("day_%02d", day)),
	}
	return solverTemplate.Execute(writer, vm)
}

func addWordBoundariesToNumbers(s string) string {
	b := []byte(s)
	b = numberSequence.ReplaceAll(b, numberReplacement)
	return string(b)
}

func pascalCase(s string) string {
	s = addWordBoundariesToNumbers(s)
	s = strings.Trim(s, " ")
	n := ""
	capNext := true
	for _, v := range s {
		if v >= 'A' && v <= 'Z' {
			n += string(v)
		}
		if v >= '0' && v <= '9' {
			n += string(v)
		}
		if v >= 'a' && v <= 'z' {
			if capNext {
				n += strings.ToUpper(string(v))
			} else {
				n += string(v)
			}
		}
		capNext = v == '_' || v == ' ' || v == '-'
	}
	return n
}
