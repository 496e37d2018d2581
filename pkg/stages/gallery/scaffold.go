package gallery

import (
	"fmt"
	"strings"

	"github.com/user/uibench/pkg/naming"
	"github.com/user/uibench/pkg/ports"
)

// Scaffold writes a minimal gallery document with one empty section per
// application, so insertion has sections to target. An existing gallery is
// left untouched.
func Scaffold(fs ports.FileSystem, path string, appNames []string) error {
	exists, err := fs.Exists(path)
	if err != nil {
		return fmt.Errorf("stat gallery: %w", err)
	}
	if exists {
		return nil
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n<title>LLM Interface Benchmark</title>\n")
	b.WriteString("</head>\n<body>\n<h1>LLM Interface Benchmark</h1>\n")
	for _, name := range appNames {
		fmt.Fprintf(&b, "<section id=%q>\n<h2>%s</h2>\n<div class=\"cards\"></div>\n</section>\n",
			naming.AppDir(name), name)
	}
	b.WriteString("</body>\n</html>\n")

	return fs.WriteFile(path, []byte(b.String()))
}
