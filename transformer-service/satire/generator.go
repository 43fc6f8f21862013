package satire

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/model"
)

// The mock generator is seeded from the article title, so the same headline
// always produces the same satirical article, across calls and restarts.

var genericHeadlines = []string{
	"Local Area Experts Baffled by Predictable Turn of Events",
	"Scientists Discover That Things Continue to Happen, More at 11",
	"Breaking: World Still Spinning, Residents Unimpressed",
	"Researchers Confirm Reality Still Operating Within Normal Parameters",
	"Local Person Shocked to Learn Universe Follows Established Patterns",
	"Area Officials Announce That Time Continues Moving Forward",
	"Experts Puzzled by Occurrence of Scheduled Event",
	"Community Leaders Perplexed by Entirely Foreseeable Development",
}

var descriptors = []string{
	"startling revelation", "shocking development", "unprecedented occurrence",
	"mind-bending discovery", "earth-shattering news", "reality-defying event",
}

var expertNames = []string{
	"Dr. Sarah Mitchell", "Professor Bob Thompson", "Dr. Jennifer Walsh",
	"Professor Mike Stevens", "Dr. Lisa Chen", "Professor David Kumar",
}

var institutions = []string{
	"University of Common Sense", "Institute of Obvious Studies",
	"College of Predictable Outcomes", "Academy of Expected Results",
}

var residentNames = []string{
	"Karen Johnson", "Mike Davis", "Jennifer Smith",
	"Bob Wilson", "Sarah Brown", "Tom Anderson",
}

// angle bundles the category-specific scenario and quotes woven into the body.
type angle struct {
	scenario      string
	expertQuote   string
	residentQuote string
}

var (
	technologyAngle = angle{
		scenario:      "the latest technological development continues to perplex humanity",
		expertQuote:   "We've been studying human-computer interaction for decades, and yet people still act surprised when technology does exactly what it was designed to do.",
		residentQuote: "I had no idea that pressing buttons would make things happen on screens.",
	}
	healthAngle = angle{
		scenario:      "people are discovering that their bodies still require basic maintenance",
		expertQuote:   "After years of research, we've confirmed that the human body continues to function according to established biological principles.",
		residentQuote: "Who could have predicted that what I eat and how much I exercise would affect my health?",
	}
	businessAngle = angle{
		scenario:      "economic principles continue to operate as economists predicted",
		expertQuote:   "Our extensive research has revealed that supply, demand, and market forces are still functioning exactly as textbooks describe.",
		residentQuote: "I'm shocked to learn that businesses exist to make money.",
	}
	defaultAngle = angle{
		scenario:      "current events continue to unfold in a logical sequence",
		expertQuote:   "We've been observing cause-and-effect relationships for years, yet people remain surprised when actions have consequences.",
		residentQuote: "I had no idea that today would be followed by tomorrow.",
	}
)

const descriptionTemplate = "In a %s that has left experts frantically updating their textbooks, recent events have confirmed what many suspected all along: things continue to happen in the world."

const contentTemplate = `%s - In a development that has left researchers at the %s scrambling to update their "Encyclopedia of Predictable Outcomes," recent events have confirmed that %s.

%s, Professor of Stating the Obvious at %s, expressed measured bewilderment at the public's reaction: "%s It's like being surprised that gravity makes things fall down."

The discovery came after extensive research involving careful observation of reality and occasionally checking the news. "The evidence was overwhelming," said lead researcher Dr. Amanda Foster, who spent nearly four minutes analyzing the situation before reaching her groundbreaking conclusion.

Local resident %s, %d, was reportedly "stunned" by this revelation. "%s" she said while simultaneously demonstrating a complete understanding of exactly how these things work.

Meanwhile, experts continue to analyze the situation with the same level of accuracy they've maintained since the invention of expertise. "We're confident that things will continue to happen in roughly the order they happen," announced analyst Dr. Patricia Moore, before immediately being proven correct by the passage of time.

The international community has responded with its customary level of measured confusion, with world leaders issuing statements that can best be summarized as "We acknowledge that events occurred and will probably continue occurring."

In related news, the sun rose this morning as scheduled, water remains wet, and people continue to have opinions about things.

This story is developing, assuming anyone can agree on what 'developing' means when applied to the unstoppable march of causality itself.`

// Generate synthesizes a satirical article without any backend. All random
// choices draw from a PRNG seeded by the title digest, so output is a pure
// function of the input article.
func Generate(article model.NewsItem) model.Transformed {
	rng := rand.New(rand.NewSource(int64(seedFromTitle(article.Title))))

	title := strings.ToLower(article.Title)
	category := strings.ToLower(article.Category)

	var headline string
	switch {
	case strings.Contains(title, "trump") || strings.Contains(title, "president"):
		headline = "Local Man Discovers Politicians Still Doing Politics, Experts Stunned"
	case strings.Contains(category, "health") || strings.Contains(title, "medical"):
		headline = "Area Residents Shocked to Learn Bodies Still Require Maintenance"
	case strings.Contains(category, "business") || strings.Contains(title, "finance"):
		headline = "Money Continues to Exist Despite Public's Best Efforts to Ignore It"
	case strings.Contains(category, "technology"):
		headline = "Scientists Confirm: Computers Still Computing, Public Bewildered"
	default:
		headline = genericHeadlines[rng.Intn(len(genericHeadlines))]
	}

	description := fmt.Sprintf(descriptionTemplate, descriptors[rng.Intn(len(descriptors))])

	expert := expertNames[rng.Intn(len(expertNames))]
	institution := institutions[rng.Intn(len(institutions))]
	resident := residentNames[rng.Intn(len(residentNames))]
	residentAge := 25 + rng.Intn(41)

	a := angleFor(category)

	content := fmt.Sprintf(contentTemplate,
		strings.ToUpper(article.Category),
		institution,
		a.scenario,
		expert,
		institution,
		a.expertQuote,
		resident,
		residentAge,
		a.residentQuote,
	)

	return model.Transformed{
		Title:       headline,
		Description: description,
		Content:     content,
	}
}

func angleFor(category string) angle {
	switch {
	case strings.Contains(category, "technology"):
		return technologyAngle
	case strings.Contains(category, "health"):
		return healthAngle
	case strings.Contains(category, "business"):
		return businessAngle
	default:
		return defaultAngle
	}
}

// seedFromTitle takes the first 8 hex digits of the title's md5 digest as a
// 32-bit seed.
func seedFromTitle(title string) uint32 {
	digest := md5.Sum([]byte(title))
	seed, _ := strconv.ParseUint(hex.EncodeToString(digest[:])[:8], 16, 32)
	return uint32(seed)
}

// Unavailable is the canned article served when the OpenAI call or its reply
// parsing fails outright. Distinct from the seeded no-credential generator.
func Unavailable() model.Transformed {
	return model.Transformed{
		Title:       "Local News Event Occurs, Area Residents Moderately Concerned",
		Description: "[AI Transformation temporarily unavailable] Scientists baffled by yet another thing happening.",
		Content:     "BREAKING - In what experts are calling 'a thing that happened,' local events continue to unfold at the pace of reality itself. More details as they develop, or don't.",
	}
}
