package gateway

import "strings"

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type generationConfig struct {
	Temperature        float64       `json:"temperature,omitempty"`
	TopP               float64       `json:"topP,omitempty"`
	TopK               int           `json:"topK,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// text joins the text parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// audio returns the inline data of the first part of the first candidate.
func (r *generateResponse) audio() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	if d := r.Candidates[0].Content.Parts[0].InlineData; d != nil {
		return d.Data
	}
	return ""
}

var sampling = generationConfig{
	Temperature: 0.7,
	TopP:        0.95,
	TopK:        64,
}

func userContent(text string) content {
	return content{Role: "user", Parts: []part{{Text: text}}}
}

func textRequest(system string, contents []content) generateRequest {
	cfg := sampling
	return generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: system}}},
		GenerationConfig:  &cfg,
	}
}
