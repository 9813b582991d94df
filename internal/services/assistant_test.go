package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantReplyGreeting(t *testing.T) {
	reply := AssistantReply("Hello there", "")
	assert.Equal(t, "Hello! I can help with weather and travel planning. Ask me anything.", reply)
}

func TestAssistantReplyGreetingWithCity(t *testing.T) {
	reply := AssistantReply("hey!", "Pune")
	assert.Equal(t, "Hello! I can help with weather and travel planning. Ask me anything. Currently viewing weather for Pune.", reply)
}

func TestAssistantReplyGreetingBeatsRain(t *testing.T) {
	// Both a greeting and a rain keyword: the earlier intent wins.
	reply := AssistantReply("hi, will it rain today?", "")
	assert.Contains(t, reply, "Hello!")
	assert.NotContains(t, reply, "chance of rain")
}

func TestAssistantReplyCategories(t *testing.T) {
	tests := []struct {
		name    string
		message string
		city    string
		want    string
	}{
		{
			name:    "rain without city",
			message: "chance of precipitation?",
			want:    "There's a chance of rain. Check the hourly forecast tiles for probabilities.",
		},
		{
			name:    "rain with city",
			message: "is it rainy",
			city:    "Sangli",
			want:    "For Sangli, check the hourly forecast tiles above for rain probabilities. Each tile shows the percentage chance of precipitation.",
		},
		{
			name:    "temperature without city",
			message: "how cold is it",
			want:    "Temperature details are shown on the left panel. Want me to check another city?",
		},
		{
			name:    "temperature with city",
			message: "current temp please",
			city:    "Mumbai",
			want:    "In Mumbai, the temperature details are shown on the main card. Check the current temp, feels like, and daily min/max ranges.",
		},
		{
			name:    "forecast without city",
			message: "show the daily forecast",
			want:    "Check the 'Hourly forecast' and 'Next 3 days' sections above for detailed forecast information.",
		},
		{
			name:    "forecast with city",
			message: "what about tomorrow",
			city:    "Delhi",
			want:    "For Delhi, the hourly forecast shows the next 6 intervals, and the daily forecast shows the next 3 days with min/max temps and rain chances.",
		},
		{
			name:    "travel",
			message: "plan a journey for me",
			want:    "Use the Smart Travel Planner above to enter origin and destination. I can help plan routes between cities!",
		},
		{
			name:    "capabilities",
			message: "what can you do?",
			want:    "I can help with: 1) Current weather information, 2) Hourly and daily forecasts, 3) Rain probabilities, 4) Temperature details, 5) Travel route planning. Just ask!",
		},
		{
			name:    "fallback without city",
			message: "tell me a joke",
			want:    "I understand. Can you be more specific? Try asking about weather, forecasts, rain, temperature, or travel routes.",
		},
		{
			name:    "fallback with city",
			message: "tell me a joke",
			city:    "Pune",
			want:    "I understand. Can you be more specific? Try asking about weather, forecasts, rain, temperature, or travel routes. (Current city: Pune)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssistantReply(tt.message, tt.city))
		})
	}
}

func TestAssistantReplyCaseInsensitive(t *testing.T) {
	assert.Contains(t, AssistantReply("HELLO", ""), "Hello!")
	assert.Contains(t, AssistantReply("Will it RAIN?", ""), "chance of rain")
}
