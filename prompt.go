package pagesift

import "strings"

// PromptTemplate is the instruction sent to the model for every segment.
// {dom_content} and {parse_description} are replaced by Prompt.Render.
const PromptTemplate = "You are tasked with extracting specific information from the following text content: {dom_content}. " +
	"Please follow these instructions carefully: \n\n" +
	"1. **Extract Information:** Only extract the information that directly matches the provided description: {parse_description}. " +
	"2. **No Extra Content:** Do not include any additional text, comments, or explanations in your response. " +
	"3. **Empty Response:** If no information matches the description, return an empty string ('')." +
	"4. **Direct Data Only:** Your output should contain only the data that is explicitly requested, with no other text."

// Prompt binds PromptTemplate to one segment and the user's description.
type Prompt struct {
	DOMContent       string `json:"domContent"`
	ParseDescription string `json:"parseDescription"`
}

// BuildPrompt returns the prompt for one segment.
func BuildPrompt(segment, description string) Prompt {
	return Prompt{DOMContent: segment, ParseDescription: description}
}

// Render substitutes the prompt variables into PromptTemplate.
// Substitution happens in a single pass so text inside the segment that
// looks like a placeholder is left alone.
func (p Prompt) Render() string {
	r := strings.NewReplacer(
		"{dom_content}", p.DOMContent,
		"{parse_description}", p.ParseDescription,
	)
	return r.Replace(PromptTemplate)
}
