package chat

import "fmt"

// BuildSystemPrompt returns the assistant's base instructions for a project.
// The sections index is appended separately; the instructions tell the model
// to build citation links exclusively from it so every emitted /ref target is
// resolvable.
func BuildSystemPrompt(projectName string) string {
	return fmt.Sprintf(`You are the documentation assistant for %s. Your role is to answer questions about the processes, workflows, roles, tools, and best practices that are documented.

## RULES
- Be concise and direct. Use lists and tables where appropriate.
- Cite the relevant section using reference links in this format:
  [Section Title (Doc XX)](/ref/doc-slug/section-slug)
  Use the section index provided at the end to build correct links.
- If something is not covered by the documentation, say you do not have that information.
- Do not invent processes or rules that are not documented.
- Format your answers in markdown.`, projectName)
}

// composeSystem joins the base instructions and the rendered sections index
// into the full system prompt.
func composeSystem(projectName, sectionsPrompt string) string {
	return BuildSystemPrompt(projectName) + "\n\n---\n\n## SECTION INDEX\n\n" + sectionsPrompt
}

// titlePrompt asks the model for a short chat title from the opening message.
func titlePrompt(firstMessage string) string {
	return fmt.Sprintf(`Generate a short title (at most 6 words) for a conversation that starts with this message: "%s". Reply with ONLY the title, without quotes or trailing punctuation.`, firstMessage)
}
