package tutorial

// Prompt templates. Data only.

// analysisPrompt asks for a summary, topics and a cleaned transcript.
// Args: transcript.
const analysisPrompt = `Analyze this video transcript and provide:
1. A concise summary (2-3 sentences)
2. Key topics covered (as a comma-separated list)
3. A cleaned up version of the transcript with better formatting

Transcript: "%s"

Format your response as JSON with keys: summary, keyTopics (array), cleanedTranscript`

// tutorialPrompt asks for a structured tutorial.
// Args: video title, summary, key topics, transcript.
const tutorialPrompt = `Create a comprehensive step-by-step tutorial based on this video transcript.

Video Title: %s
Summary: %s
Key Topics: %s
Transcript: %s

Generate a detailed tutorial with the following structure (respond in JSON format):
{
  "title": "Clear, actionable title for the tutorial",
  "difficulty": "Beginner/Intermediate/Advanced",
  "estimatedTime": "X minutes/hours",
  "description": "Brief description of what the tutorial teaches",
  "prerequisites": ["List of required knowledge/skills"],
  "materials": ["List of tools, software, or resources needed"],
  "steps": [
    {
      "stepNumber": 1,
      "title": "Step title",
      "description": "Detailed explanation of what to do",
      "tips": ["Optional helpful tips for this step"]
    }
  ],
  "additionalResources": ["Links to documentation, related tutorials, etc."]
}

Make the tutorial practical, actionable, and easy to follow. Include 5-10 detailed steps with clear instructions.`
