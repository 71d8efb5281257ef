// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"text/template"
)

// translationPromptTmpl asks the model to translate an abstract into the
// target language. Domain vocabulary (transformer, token, logit) is left
// untranslated so the output stays readable to practitioners.
var translationPromptTmpl = template.Must(template.New("translation").Parse(`You will be given the abstract of a machine learning paper. Translate it into {{.Language}}. Keep the translation fluent and natural. Leave domain terms such as transformer, token, and logit untranslated. Output plain text without Markdown formatting.

{{.Abstract}}`))

// contributionPromptTmpl asks for a one-sentence statement of the paper's
// core contribution, in the "used X to solve Y" shape.
var contributionPromptTmpl = template.Must(template.New("contribution").Parse(`You will be given the abstract of a machine learning paper. In {{.Language}}, state the paper's core contribution in a single sentence, typically of the form: what method was used to solve what problem. Keep it fluent and natural. Leave domain terms such as transformer, token, and logit untranslated. Output plain text without Markdown formatting.

{{.Abstract}}`))

// promptData feeds both templates.
type promptData struct {
	Language string
	Abstract string
}

func renderPrompt(tmpl *template.Template, language, abstract string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Language: language, Abstract: abstract}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
