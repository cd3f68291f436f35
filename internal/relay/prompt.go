package relay

import "fmt"

// The user's text is embedded into fixed directive templates before it is
// sent upstream. The wrappers steer the model toward complete, presentable
// images instead of literal fragments.

const (
	generateTemplate = "Generate a high-quality image based on this description: %s. The image should be detailed, visually appealing, and suitable for general audiences."

	editTemplate = "Edit the provided image according to this instruction: %s. Maintain the overall composition while making the requested changes. Ensure the result is high-quality and visually coherent."
)

func buildGeneratePrompt(description string) string {
	return fmt.Sprintf(generateTemplate, description)
}

func buildEditPrompt(instruction string) string {
	return fmt.Sprintf(editTemplate, instruction)
}
