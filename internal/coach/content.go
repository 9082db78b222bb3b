package coach

var baseRecommendations = map[Feeling][]Recommendation{
	FeelingTired: {
		{Title: "Short break", Description: "Rest for 15-20 minutes", Action: "Set an alarm and take a break"},
		{Title: "Caffeine boost", Description: "Have a coffee or green tea", Action: "Keep caffeine moderate"},
		{Title: "Short walk", Description: "Fresh air will help", Action: "Walk outside for 10-15 minutes"},
		{Title: "Hydration", Description: "Dehydration can cause fatigue", Action: "Drink a glass of water"},
	},
	FeelingStressed: {
		{Title: "Deep breathing", Description: "The 4-7-8 breathing technique", Action: "Inhale 4s, hold 7s, exhale 8s"},
		{Title: "Relaxing music", Description: "Listen to your favourite songs", Action: "Put on something calming"},
		{Title: "Organise tasks", Description: "Set priorities", Action: "Split large tasks into smaller ones"},
		{Title: "Call a friend", Description: "Share how you feel", Action: "Talking it through can help"},
	},
	FeelingEnergetic: {
		{Title: "Exercise", Description: "Put the energy into activity", Action: "20-30 minutes of physical activity"},
		{Title: "Finish tasks", Description: "Time to be productive", Action: "Focus on important projects"},
		{Title: "Socialise", Description: "Reach out to friends", Action: "Plan a meetup or a call"},
		{Title: "Creative project", Description: "Start something new", Action: "Use the energy to create"},
	},
	FeelingUnfocused: {
		{Title: "Remove distractions", Description: "Put your phone on silent", Action: "Turn off notifications"},
		{Title: "Make a list", Description: "Organise your tasks", Action: "Write down today's priorities"},
		{Title: "Pomodoro technique", Description: "25 min of work, 5 min break", Action: "Set a timer and focus"},
		{Title: "Change of scenery", Description: "A new place can help", Action: "Work from somewhere else"},
	},
}

var addActivity = Recommendation{
	Title:       "Add physical activity",
	Description: "You have not exercised much lately",
	Action:      "A short workout or a walk",
}

var regularSleep = Recommendation{
	Title:       "Regular sleep",
	Description: "Your sleep schedule has been irregular",
	Action:      "Go to bed at the same time every night",
}

var contextualAdvice = map[TimeOfDay][]string{
	Morning: {
		"Start the day with a glass of water",
		"5 minutes of meditation can change the whole day",
		"Set 3 main goals for today",
	},
	Afternoon: {
		"Time for an energy boost: take a short walk",
		"Check how your morning goals are going",
		"A short break will raise your productivity",
	},
	Evening: {
		"Get ready for quality sleep",
		"Think about the good things from today",
		"Turn off screens an hour before bed",
	},
}

var quotes = []string{
	"Every new day is a chance to become a better version of yourself.",
	"Success is the sum of small efforts repeated day in and day out.",
	"Your only limit is you.",
	"Start where you are. Use what you have. Do what you can.",
	"Change begins at the end of your comfort zone.",
	"A small win every day leads to big success.",
	"Quality sleep is the foundation of a good day.",
	"Movement is medicine for body and mind.",
	"Anything you start today can change your life.",
	"The energy you invest in yourself comes back twice over.",
	"Small steps every day lead to big changes.",
	"Your future self will thank you for the habits you build today.",
	"Progress, not perfection, is the goal.",
	"Every expert was once a beginner who did not give up.",
	"Consistency is the mother of all success.",
	"Healthy habits are an investment in your future.",
}
