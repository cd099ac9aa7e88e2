package contract

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// SystemPrompt returns the system prompt for contract analysis.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt around the contract text.
func UserPrompt(contractText string) string {
	var buf bytes.Buffer
	data := struct{ ContractText string }{ContractText: contractText}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}
