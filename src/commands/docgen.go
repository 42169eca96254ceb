package commands

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/urfave/cli.v1"
)

// GenerateDocs generates markdown documentation for the commands in app
func GenerateDocs(app *cli.App) (result string) {
	buffer := bytes.Buffer{}

	buffer.WriteString(fmt.Sprintf("# `%s`\n\n%s - %s\n\n", app.Name, app.Version, app.Authors[0]))

	if app.Usage != "" {
		buffer.WriteString(app.Usage)
		buffer.WriteString("\n\n")
	}
	if app.Description != "" {
		buffer.WriteString(app.Description)
		buffer.WriteString("\n\n")
	}

	buffer.WriteString(fmt.Sprintf("## Commands (%d)\n\n", len(app.Commands)))
	for _, command := range app.Commands {
		generateCommandDocs(app.Name, command, &buffer)
		buffer.WriteString("---\n\n")
	}

	if len(app.Flags) > 0 {
		buffer.WriteString("## Global Flags\n\n")
		writeFlags(app.Flags, &buffer)
		buffer.WriteString("\n")
	}
	return buffer.String()
}

func generateCommandDocs(prefix string, command cli.Command, buffer *bytes.Buffer) {
	buffer.WriteString(fmt.Sprintf("### `%s %s`\n\n", prefix, command.Name))
	if command.Usage != "" {
		buffer.WriteString(fmt.Sprintf("Usage: `%s`\n\n", command.Usage))
	}
	if command.Description != "" {
		buffer.WriteString(fmt.Sprintf("%s\n\n", command.Description))
	}
	if len(command.Flags) > 0 {
		buffer.WriteString("#### Flags\n\n")
		writeFlags(command.Flags, buffer)
		buffer.WriteString("\n")
	}
}

func writeFlags(flags []cli.Flag, buffer *bytes.Buffer) {
	for _, flag := range flags {
		name, usage := flag.String(), ""
		if i := strings.Index(name, "\t"); i >= 0 {
			name, usage = name[:i], name[i+1:]
		}
		buffer.WriteString(fmt.Sprintf("- `%s`: %s\n", name, usage))
	}
}
