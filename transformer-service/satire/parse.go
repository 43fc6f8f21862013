package satire

import (
	"strings"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/model"
)

const (
	fallbackTitle       = "Breaking: Local News Still Happening, Experts Baffled"
	fallbackDescription = "In a shocking turn of events, things continue to occur in the world."
)

// ParseCompletion extracts the three article fields from a model reply.
// Primary parse scans for TITLE:/DESCRIPTION:/CONTENT: markers, folding
// continuation lines into the active section. If the reply ignored the
// layout, a secondary parse splits it on blank lines into three chunks;
// failing that, fixed title/description are used and the raw reply becomes
// the body. This never errors: some readable article always comes back.
func ParseCompletion(reply string) model.Transformed {
	var (
		title        string
		description  string
		content      string
		contentLines []string
		section      string
	)

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, "TITLE:"):
			section = "title"
			title = strings.TrimSpace(strings.TrimPrefix(stripped, "TITLE:"))
		case strings.HasPrefix(stripped, "DESCRIPTION:"):
			section = "description"
			description = strings.TrimSpace(strings.TrimPrefix(stripped, "DESCRIPTION:"))
		case strings.HasPrefix(stripped, "CONTENT:"):
			section = "content"
			if rest := strings.TrimSpace(strings.TrimPrefix(stripped, "CONTENT:")); rest != "" {
				contentLines = append(contentLines, rest)
			}
		case section == "description" && stripped != "":
			description += " " + stripped
		case section == "content" && stripped != "":
			contentLines = append(contentLines, stripped)
		}
	}

	if len(contentLines) > 0 {
		content = strings.Join(contentLines, "\n")
	}

	if title == "" || description == "" {
		sections := strings.Split(strings.TrimSpace(reply), "\n\n")
		if len(sections) >= 3 {
			title = strings.TrimSpace(strings.TrimPrefix(sections[0], "TITLE:"))
			description = strings.TrimSpace(strings.TrimPrefix(sections[1], "DESCRIPTION:"))
			content = strings.TrimSpace(strings.TrimPrefix(sections[2], "CONTENT:"))
		} else {
			title = fallbackTitle
			description = fallbackDescription
			content = strings.TrimSpace(reply)
		}
	}

	if title == "" {
		title = fallbackTitle
	}
	if description == "" {
		description = fallbackDescription
	}
	if content == "" {
		content = strings.TrimSpace(reply)
	}

	return model.Transformed{
		Title:       title,
		Description: description,
		Content:     content,
	}
}
