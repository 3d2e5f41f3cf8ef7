package gateway

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
)

const bigSisInstruction = "You are a supportive, encouraging AI mentor with a 'Big Sis' tone. Your advice should be calm, soulful, and focused on the user's growth, clarity, and confidence. You provide gentle, actionable guidance, not harsh criticism. Use emojis like 🌿, ✨, and 🙏 to add warmth."

const reflectionInstruction = "You are a gentle and wise reflection guide. Your goal is to provide a single, powerful question that encourages self-discovery and kindness, not to give advice."

const ideasInstruction = "You are a creative partner for content creators, specializing in soulful, value-driven content. Your tone is inspiring and helpful."

const mockupInstruction = "You are a creative director and graphic designer with a modern, soulful aesthetic. You translate content ideas into beautiful visual concepts."

// RefusalMarker starts the reply the soundscape model gives when it will
// not write a script.
const RefusalMarker = "I'm having a little trouble"

const soundscapeInstruction = `You are an AI that generates short, calming scripts for a text-to-speech model. The user will tell you how they're feeling. Your task is to write a 30-50 word script in a soothing, second-person voice ("You are...") that addresses their feeling with a calming affirmation or visualization. The voice should be calm, soothing, and slow-paced. Do not include instructions like "Say in a calm voice". Just provide the script. If the user prompt is inappropriate or you cannot fulfill it, respond with "` + RefusalMarker + ` creating that for you right now, but I'm sending you a wave of peace. 🙏"`

// performanceJSON renders perf two-space indented, "[]" when empty.
func performanceJSON(perf []appdata.PlatformPerformance) string {
	if perf == nil {
		perf = []appdata.PlatformPerformance{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(perf); err != nil {
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func analyticsPrompt(perf []appdata.PlatformPerformance, ob *appdata.Onboarding) string {
	var b strings.Builder
	b.WriteString("Analyze the following platform performance data for a soulful creator. Provide gentle, actionable insights in a supportive 'big sis' tone. Focus on what's working and suggest one or two small, manageable tweaks.\n\nData:\n")
	b.WriteString(performanceJSON(perf))
	b.WriteString("\n")
	if ob != nil && ob.GrowthArea != "" {
		b.WriteString("\nThe creator's current growth area is: \"" + ob.GrowthArea + "\". Align your advice with this focus.")
	}
	if ob != nil && ob.SuccessFeeling != "" {
		b.WriteString("\nThey define success as feeling: \"" + ob.SuccessFeeling + "\". Ensure your insights support this feeling.")
	}
	return b.String()
}

func reflectionPrompt(perf []appdata.PlatformPerformance, journal string, ob *appdata.Onboarding) string {
	if journal == "" {
		journal = "No entry written."
	}
	var b strings.Builder
	b.WriteString("I am a soulful creator. Based on my recent journal entry and platform performance, provide one gentle, insightful reflection prompt to help me dig deeper. The tone should be like a wise, kind friend.\n\n")
	b.WriteString("My Journal Entry:\n\"" + journal + "\"\n\n")
	b.WriteString("My Platform Performance:\n" + performanceJSON(perf) + "\n")
	if ob != nil && ob.GrowthArea != "" {
		b.WriteString("\nMy current growth area is: \"" + ob.GrowthArea + "\".")
	}
	return b.String()
}

func ideasPrompt(prompt string, ob *appdata.Onboarding) string {
	p := "Generate 3-4 content ideas based on this prompt: \"" + prompt + "\". Frame them for a soulful creator audience. Be creative and encouraging.\n    \n    Format the output clearly, perhaps with bullet points or numbered lists."
	if ob != nil && ob.GrowthArea != "" {
		p += "\nKeep in mind the creator's focus is on: \"" + ob.GrowthArea + "\"."
	}
	return p
}

func mockupPrompt(idea string) string {
	return "Based on the following content idea, describe a visual concept for a social media post (e.g., a carousel for Instagram). Be descriptive about the layout, colors, fonts, and imagery. The aesthetic should be soulful, calm, and minimalist.\n\n" +
		"Content Idea: \"" + idea + "\"\n\n" +
		"Your response should be a description of the visual mockup, not the content itself."
}

func soundscapePrompt(feeling string) string {
	return "User feeling: \"" + feeling + "\""
}

// chatInstruction personalises the mentor when both onboarding answers
// are known.
func chatInstruction(ob *appdata.Onboarding) string {
	if ob == nil || ob.GrowthArea == "" || ob.SuccessFeeling == "" {
		return bigSisInstruction
	}
	return bigSisInstruction + " The user is currently focused on '" + ob.GrowthArea + "' and defines success as feeling '" + ob.SuccessFeeling + "'. Tailor your advice to support these specific goals."
}
