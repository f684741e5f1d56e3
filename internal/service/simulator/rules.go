package simulator

// QuickReplies are the shortcut labels offered under the chat input. They are
// submitted verbatim as if typed.
var QuickReplies = []string{
	"Plumbing",
	"Electrical work",
	"House cleaning",
	"Tutoring",
	"Car repair",
	"Painting",
}

// Greeting seeds every new conversation.
const Greeting = "Hi! Welcome to GrooveHire 👋 I'm here to help you find the perfect service provider. What service do you need today?"

// Fallback is returned when no rule matches.
const Fallback = "I understand! Let me help you find the right service provider. Could you please tell me more about what you need help with?"

// DefaultRules returns the built-in scripted flow in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "plumbing",
			Keywords: []string{"plumbing"},
			Reply:    "Great! I found some excellent plumbers in your area. Can you share your location so I can show you the closest ones? 📍",
		},
		{
			Name:     "electrical",
			Keywords: []string{"electrical"},
			Reply:    "Perfect! I have certified electricians available. What type of electrical work do you need - installation, repair, or maintenance? ⚡",
		},
		{
			Name:     "cleaning",
			Keywords: []string{"cleaning"},
			Reply:    "Wonderful! I can connect you with trusted house cleaners. Do you need regular cleaning service or a one-time deep clean? 🏠",
		},
		{
			Name:     "tutoring",
			Keywords: []string{"tutoring"},
			Reply:    "Excellent! I have qualified tutors for various subjects. What subject and level do you need help with? 📚",
		},
		{
			Name:     "location",
			Keywords: []string{"location", "westlands"},
			Reply:    "Thanks! I found 3 top-rated plumbers near Westlands:\n\n🔧 Mike Johnson - 4.9⭐ (2.1km away)\n🔧 Grace Wanjiku - 4.8⭐ (3.5km away)\n🔧 Peter Kamau - 4.7⭐ (4.2km away)\n\nWould you like to book any of them?",
		},
		{
			Name:     "provider",
			Keywords: []string{"mike", "book"},
			Reply:    "Great choice! Mike Johnson is available today. Here are the details:\n\n👨‍🔧 Mike Johnson\n⭐ Rating: 4.9/5 (245 reviews)\n💰 Rate: KES 1,200/hour\n📍 2.1km from you\n\nShall I proceed with the booking?",
		},
		{
			Name:     "confirm",
			Keywords: []string{"yes", "proceed"},
			Reply:    "Perfect! I'll need a few details:\n\n1. What's the plumbing issue?\n2. Your preferred time?\n3. Your contact number?\n\nAfter this, you can pay securely via M-Pesa! 💳",
		},
	}
}
