package generator

import (
	"fmt"
	"strings"

	"github.com/meagherphilip/blogsmith/internal/models"
)

// voiceInstructions are fixed writing-style blocks selected by the request's
// voice parameter. Unknown voices fall back to expert.
var voiceInstructions = map[string]string{
	"expert": `
Voice: Expert Authority
- Write as an experienced professional
- Share insights from years of experience
- Use phrases like "In my experience...", "What I've learned..."
- Confident but not arrogant
- Include specific expertise markers`,

	"experienced": `
Voice: Been-There-Done-That
- Write as someone who's made mistakes and learned
- Use "When I first started...", "I used to think..."
- Share failures and lessons
- Empathetic and encouraging
- "Here's what I wish I knew..."`,

	"curious": `
Voice: Curious Explorer
- Write as someone learning alongside reader
- Use "I discovered...", "I was surprised to learn..."
- Ask questions and explore answers
- Enthusiastic about finding things out
- "Let's figure this out together..."`,

	"skeptical": `
Voice: Healthy Skeptic
- Question conventional wisdom
- Use "But wait...", "Here's what they don't tell you..."
- Challenge assumptions
- Back up skepticism with data
- "I was doubtful until I saw..."`,
}

// VoiceInstructions returns the instruction block for a voice, falling back
// to expert for unknown values
func VoiceInstructions(voice string) string {
	if block, ok := voiceInstructions[voice]; ok {
		return block
	}
	return voiceInstructions["expert"]
}

// promptParams carries everything the prompt templates need
type promptParams struct {
	Topic        string
	Keywords     []string
	Tone         string
	Voice        string
	TargetLength int
}

func (p promptParams) keywordList() string {
	if len(p.Keywords) > 0 {
		return strings.Join(p.Keywords, ", ")
	}
	return p.Topic
}

// researchContext renders the research block embedded in the outline prompt
func researchContext(research *models.Research) string {
	if research == nil {
		return ""
	}

	sources := research.Sources
	if len(sources) > 5 {
		sources = sources[:5]
	}
	var lines []string
	for _, s := range sources {
		lines = append(lines, fmt.Sprintf("- %s: %s", s.Title, s.Description))
	}

	return fmt.Sprintf(`
Research Data Available:
%s

Key Statistics: %s
`, strings.Join(lines, "\n"), strings.Join(research.KeyStats, ", "))
}

func outlinePrompt(p promptParams, research *models.Research) string {
	return fmt.Sprintf(`Create a detailed outline for a blog post about %q.

%s

Tone: %s
Target length: %d words
Keywords to incorporate: %s

%s

Requirements:
- Create 4-6 main sections (H2)
- Each section should have 2-3 subsections (H3) where appropriate
- Plan for specific examples and data points
- Include places for statistics

Return ONLY a JSON object in this format:
{
  "title": "Compelling, click-worthy blog title (50-60 chars)",
  "slug": "url-friendly-slug",
  "excerpt": "2-3 sentence teaser that hooks readers (150-160 chars)",
  "sections": [
    {"heading": "H2 heading", "subsections": ["H3 subheading"], "word_count": 400},
    {"heading": "H2 heading", "subsections": [], "word_count": 350}
  ],
  "keyPoints": ["point 1", "point 2", "point 3"],
  "sources_to_cite": ["source 1", "source 2"]
}`,
		p.Topic, VoiceInstructions(p.Voice), p.Tone, p.TargetLength,
		p.keywordList(), researchContext(research))
}

func sectionPrompt(p promptParams, section OutlineSection, research *models.Research) string {
	subsections := ""
	if len(section.Subsections) > 0 {
		subsections = fmt.Sprintf("Subsections to cover: %s", strings.Join(section.Subsections, ", "))
	}

	wordCount := section.WordCount
	if wordCount == 0 {
		wordCount = 400
	}

	statsLine := ""
	if research != nil {
		stats := research.KeyStats
		if len(stats) > 3 {
			stats = stats[:3]
		}
		statsLine = fmt.Sprintf("Include these statistics where relevant: %s", strings.Join(stats, ", "))
	}

	return fmt.Sprintf(`Write a detailed section for a blog about %q.

%s

Section: %s
%s
Target word count: %d words
Tone: %s

%s

Requirements:
- Write in markdown format with proper headings
- Include specific examples and real data
- Use first-person perspective ("I", "my", "me")
- Express opinions and preferences
- Include transitional phrases
- Use variable sentence lengths (mix short and long)
- Add rhetorical questions
- Include imperfection: "kind of", "sort of", "you know?"
- Naturally incorporate keywords: %s
- Include at least one statistic or data point
- End with transition to next section

Anti-AI Detection Guidelines:
- Write like you speak, not like a textbook
- Include personal asides ("Honestly...", "Look,")
- Use contractions (don't, can't, won't)
- Add emphasis with ALL CAPS occasionally
- Include a brief anecdote or personal example
- Express uncertainty sometimes ("I'm not sure, but...")

Write ONLY this section content, nothing else.`,
		p.Topic, VoiceInstructions(p.Voice), section.Heading, subsections,
		wordCount, p.Tone, statsLine, p.keywordList())
}

func introPrompt(p promptParams, outline *Outline) string {
	return fmt.Sprintf(`Write an engaging introduction (250-350 words) for a blog titled %q.

%s

Topic: %s
Tone: %s
Key points to preview: %s

Requirements:
- HOOK the reader in first 2 sentences (problem, question, surprising stat)
- Use first-person ("I" statements)
- Include a brief personal anecdote
- Promise what reader will learn
- Build credibility (why trust you)
- Preview the roadmap
- Use conversational tone with contractions
- Add imperfection ("I'll be honest...", "Look,")

Make the reader NEED to continue reading.`,
		outline.Title, VoiceInstructions(p.Voice), p.Topic, p.Tone,
		strings.Join(outline.KeyPoints, ", "))
}

func conclusionPrompt(p promptParams, outline *Outline) string {
	return fmt.Sprintf(`Write a compelling conclusion (200-250 words) for a blog about %q.

%s

Title: %s
Tone: %s
Key takeaways: %s

Requirements:
- Summarize main points (but don't just repeat)
- Emphasize the key takeaway
- Include call-to-action (what to do next)
- Ask an engagement question
- Use first-person perspective
- End with energy and enthusiasm
- Make reader feel empowered

End strong - this is what they'll remember.`,
		p.Topic, VoiceInstructions(p.Voice), outline.Title, p.Tone,
		strings.Join(outline.KeyPoints, ", "))
}
