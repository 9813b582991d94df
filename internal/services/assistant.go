package services

import "strings"

// intent pairs a category with the keywords that trigger it and the
// reply built for it. Intents are evaluated in declaration order and
// the first match wins, so a greeting beats a rain question even when
// the message contains both.
type intent struct {
	category string
	keywords []string
	reply    func(city string) string
}

var intents = []intent{
	{
		category: "greeting",
		keywords: []string{"hello", "hi", "hey"},
		reply: func(city string) string {
			reply := "Hello! I can help with weather and travel planning. Ask me anything."
			if city != "" {
				reply += " Currently viewing weather for " + city + "."
			}
			return reply
		},
	},
	{
		category: "rain",
		keywords: []string{"rain", "rainy", "precipitation"},
		reply: func(city string) string {
			if city != "" {
				return "For " + city + ", check the hourly forecast tiles above for rain probabilities. Each tile shows the percentage chance of precipitation."
			}
			return "There's a chance of rain. Check the hourly forecast tiles for probabilities."
		},
	},
	{
		category: "temperature",
		keywords: []string{"temp", "temperature", "hot", "cold", "warm"},
		reply: func(city string) string {
			if city != "" {
				return "In " + city + ", the temperature details are shown on the main card. Check the current temp, feels like, and daily min/max ranges."
			}
			return "Temperature details are shown on the left panel. Want me to check another city?"
		},
	},
	{
		category: "forecast",
		keywords: []string{"forecast", "forecasts", "hourly", "daily", "tomorrow"},
		reply: func(city string) string {
			if city != "" {
				return "For " + city + ", the hourly forecast shows the next 6 intervals, and the daily forecast shows the next 3 days with min/max temps and rain chances."
			}
			return "Check the 'Hourly forecast' and 'Next 3 days' sections above for detailed forecast information."
		},
	},
	{
		category: "travel",
		keywords: []string{"route", "travel", "map", "traffic", "journey"},
		reply: func(city string) string {
			return "Use the Smart Travel Planner above to enter origin and destination. I can help plan routes between cities!"
		},
	},
	{
		category: "capabilities",
		keywords: []string{"what can you do", "help", "capabilities", "features"},
		reply: func(city string) string {
			return "I can help with: 1) Current weather information, 2) Hourly and daily forecasts, 3) Rain probabilities, 4) Temperature details, 5) Travel route planning. Just ask!"
		},
	},
}

// AssistantReply classifies a message by substring containment against
// the ordered intent list and returns the canned reply, personalized
// with the city when one is set. A pure function: no state survives
// between calls, and every input gets a reply via the fallback.
func AssistantReply(message, city string) string {
	lower := strings.ToLower(message)

	for _, in := range intents {
		for _, keyword := range in.keywords {
			if strings.Contains(lower, keyword) {
				return in.reply(city)
			}
		}
	}

	reply := "I understand. Can you be more specific? Try asking about weather, forecasts, rain, temperature, or travel routes."
	if city != "" {
		reply += " (Current city: " + city + ")"
	}
	return reply
}
