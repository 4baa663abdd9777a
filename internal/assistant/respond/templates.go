package respond

import (
	"fmt"

	"github.com/oreana/assistant-server/internal/assistant/model"
)

// systemPersona frames every generative call; the raw user message is sent
// alongside it as the question.
const systemPersona = "You are a helpful assistant for %s. Provide helpful responses about courses, fees, and career guidance."

// fallbackResponses is the deterministic reply table used whenever the
// generative service is unavailable or fails.
var fallbackResponses = map[model.Intent]string{
	model.IntentCourseInfo: "We offer comprehensive courses in Technology, Business, Creative Design, and Data Science. " +
		"Each program is designed with industry experts to provide practical, job-ready skills. " +
		"Would you like details about any specific field?",
	model.IntentFees: "Our course fees vary by program and duration. We offer flexible payment plans and scholarships. " +
		"Contact us for detailed pricing: courses start from ₹15,000 to ₹1,50,000 depending on the specialization.",
	model.IntentCareerAdvice: "I'd love to help guide your career! What field interests you most? " +
		"Whether it's tech, business, creative, or data - I can suggest the best learning path and career opportunities.",
	model.IntentLeadCapture: "Thanks for providing your information! What course are you interested in?",
	model.IntentGeneral: "I'm here to help with information about our courses, fees, and career guidance. " +
		"What would you like to know more about?",
}

// fallbackFor returns the canned reply for the intent, defaulting to General.
func fallbackFor(intent model.Intent) string {
	if resp, ok := fallbackResponses[intent]; ok {
		return resp
	}
	return fallbackResponses[model.IntentGeneral]
}

// leadGreeting is the deterministic reply for a captured lead with a known
// name. It never involves the generative service.
func leadGreeting(name string) string {
	return fmt.Sprintf("Hello %s! 👋 Thanks for providing your information. I've saved your details.\n\n"+
		"Which course are you interested in? We offer:\n"+
		"• Technology & Programming\n"+
		"• Business & Management\n"+
		"• Creative Design\n"+
		"• Data Science & AI\n\n"+
		"How can I help you choose the right path?", name)
}
