package tutorial

import (
	"github.com/JT6820/TutorialTube/internal/types"
	"github.com/JT6820/TutorialTube/internal/youtube"
)

// FallbackAnalysis is used when the analysis completion cannot be decoded
func FallbackAnalysis() Analysis {
	return Analysis{
		Summary:           "This tutorial covers building a React application from scratch, including project setup, component creation, and state management.",
		KeyTopics:         topicList{"React", "Components", "State Management", "Project Setup", "CSS Modules"},
		CleanedTranscript: youtube.MockTranscript,
	}
}

// FallbackTutorial is used when the tutorial completion cannot be decoded
func FallbackTutorial() types.Tutorial {
	return types.Tutorial{
		Title:         "How to Build a React Application",
		Difficulty:    types.DifficultyBeginner,
		EstimatedTime: "30 minutes",
		Description:   "Learn to create a React application from scratch with components and state management.",
		Prerequisites: []string{"Basic JavaScript knowledge", "Node.js installed"},
		Materials:     []string{"Computer", "Text editor", "Web browser"},
		Steps: []types.Step{
			{
				StepNumber:  1,
				Title:       "Set up your development environment",
				Description: "Install Node.js and npm on your system. Verify installation by running 'node --version' and 'npm --version' in your terminal.",
				Tips:        []string{"Use the LTS version of Node.js for stability"},
			},
			{
				StepNumber:  2,
				Title:       "Create a new React project",
				Description: "Run 'npx create-react-app my-app' in your terminal to bootstrap a new React application.",
				Tips:        []string{"This command will create a new directory with all necessary files"},
			},
			{
				StepNumber:  3,
				Title:       "Explore the project structure",
				Description: "Navigate to your project folder and examine the src and public directories to understand the file organization.",
				Tips:        []string{"The src folder contains your main application code"},
			},
		},
		AdditionalResources: []string{"React Documentation", "Create React App Guide"},
	}
}
