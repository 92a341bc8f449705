package youtube

import (
	"regexp"

	"github.com/JT6820/TutorialTube/internal/types"
)

// videoIDPattern matches watch?v=, youtu.be/ and embed/ URLs
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ExtractVideoID returns the video identifier from a YouTube URL, or "" if
// the URL is not one of the supported forms
func ExtractVideoID(url string) string {
	if matches := videoIDPattern.FindStringSubmatch(url); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// MockTranscript stands in for a real transcript. Nothing is downloaded.
const MockTranscript = `Welcome to this tutorial on building a React application. Today we'll cover the basics of setting up a new React project, creating components, and managing state. First, let's start by installing Node.js and npm on your system. Once you have those installed, we can use Create React App to bootstrap our project. Run the command 'npx create-react-app my-app' in your terminal. This will create a new directory with all the necessary files and dependencies. Next, we'll explore the project structure and understand what each file does. The src folder contains our main application code, while the public folder has static assets. Let's create our first component by making a new file called Header.js. We'll use functional components with hooks for state management. Remember to import React at the top of each component file. Now let's add some styling using CSS modules to keep our styles organized and scoped to specific components.`

// MockVideoInfo returns the static metadata reported for every video
func MockVideoInfo() types.VideoInfo {
	return types.VideoInfo{
		Title:     "How to Build a React App",
		Duration:  "15:30",
		Thumbnail: "/placeholder.svg?height=180&width=320&query=youtube video thumbnail",
	}
}
