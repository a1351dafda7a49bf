package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/rs/zerolog/log"
)

func TemplateString(pattern string, args map[string]interface{}) (string, error) {
	t, err := template.New("inline").Funcs(sprig.TxtFuncMap()).Parse(pattern)
	if err != nil {
		return "", err
	}
	var output bytes.Buffer
	if err := t.Execute(&output, args); err != nil {
		return "", err
	}

	return output.String(), nil
}

func TemplateFile(templateFile string, destinationFile string, args map[string]interface{}) error {
	t, err := template.New(filepath.Base(templateFile)).Funcs(sprig.TxtFuncMap()).ParseFiles(templateFile)
	if err != nil {
		log.Error().Err(err).Str("file", templateFile).Msg("Failed to parse")
		return err
	}

	f, err := os.Create(destinationFile)
	if err != nil {
		log.Error().Err(err).Str("file", destinationFile).Msg("Failed to create")
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing generated file")
		}
	}()

	// Render template using variables
	if err := t.Execute(f, args); err != nil {
		log.Error().Err(err).Str("file", templateFile).Msg("Failed to template")
		return err
	}

	return nil
}
