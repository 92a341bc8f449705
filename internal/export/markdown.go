package export

import (
	"fmt"
	"strings"

	"github.com/JT6820/TutorialTube/internal/types"
)

// Markdown renders a tutorial as the text placed on the clipboard. The
// output depends only on the tutorial, so equal tutorials render to
// identical bytes.
func Markdown(t types.Tutorial) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t.Title)
	fmt.Fprintf(&sb, "**Difficulty:** %s\n", t.Difficulty)
	fmt.Fprintf(&sb, "**Estimated Time:** %s\n\n", t.EstimatedTime)

	fmt.Fprintf(&sb, "## Description\n%s\n\n", t.Description)
	fmt.Fprintf(&sb, "## Prerequisites\n%s\n\n", bullets(t.Prerequisites))
	fmt.Fprintf(&sb, "## Materials Needed\n%s\n\n", bullets(t.Materials))

	steps := make([]string, len(t.Steps))
	for i, step := range t.Steps {
		steps[i] = renderStep(step)
	}
	fmt.Fprintf(&sb, "## Steps\n\n%s\n\n", strings.Join(steps, "\n"))

	fmt.Fprintf(&sb, "## Additional Resources\n%s\n", bullets(t.AdditionalResources))
	return sb.String()
}

func renderStep(step types.Step) string {
	tips := make([]string, len(step.Tips))
	for i, tip := range step.Tips {
		tips[i] = "💡 **Tip:** " + tip
	}
	return fmt.Sprintf("### Step %d: %s\n\n%s\n\n%s\n",
		step.StepNumber, step.Title, step.Description, strings.Join(tips, "\n\n"))
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
