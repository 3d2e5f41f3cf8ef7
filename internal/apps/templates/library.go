package templates

import "github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"

// library is the built-in swipe file and campaign collection.
var library = []appdata.Template{
	{
		ID:      "1",
		Title:   `The "Gentle Reminder" Carousel`,
		Type:    appdata.TemplateSwipe,
		Content: `Slide 1: [Bold Statement/Question]
Example: "You don't need another productivity hack."

Slide 2: [Elaborate on the problem]
Example: "You need permission to rest. Hustle culture taught us that our worth is in our work, but that's a lie."

Slide 3: [Introduce the solution/mindset shift]
Example: "What if rest wasn't the reward, but the foundation?"

Slide 4: [Give 3 actionable tips]
Example: 
1. Schedule 15 mins of "do nothing" time.
2. Define your "enough" point for the day.
3. Celebrate the small wins, not just the big launches.

Slide 5: [Call to Action/Engagement]
Example: "How are you embracing rest this week? Share below. 🌿"`,
	},
	{
		ID:      "2",
		Title:   `The "Value Bomb" Reel Hook`,
		Type:    appdata.TemplateSwipe,
		Content: `Hook: "Stop selling your offer and start selling the feeling."

Visual: You looking thoughtfully at the camera.

Text on screen: 
- Not this: "Buy my course on sales funnels."
- This: "Imagine waking up to sales notifications and feeling calm, not chaotic."

Caption: "People don't buy products, they buy transformations. They buy feelings. Instead of listing features, talk about the peace of mind, the confidence, the freedom your offer provides. What feeling does your offer create? Let me know 👇"`,
	},
	{
		ID:      "3",
		Title:   "Soulful Product Launch Email Sequence",
		Type:    appdata.TemplateCampaign,
		Content: `Email 1: The "I see you" Email (Pain Point)
Subject: Feeling [common pain point]?
Body: Connect with their struggle. Share a personal story. Don't mention your offer yet. End with a question.

Email 2: The "What if?" Email (Possibility)
Subject: What if [desired outcome] was possible?
Body: Paint a picture of the transformation. Hint that you've found a way. 

Email 3: The Big Reveal (Offer)
Subject: Your invitation to [Your Offer Name]
Body: Introduce your offer. Focus on benefits, not just features. Who is it for? What will they achieve?

Email 4: Overcoming Objections (FAQ)
Subject: Your questions about [Your Offer Name], answered.
Body: Address common fears and doubts (time, money, self-doubt) with empathy.

Email 5: Last Call (Urgency)
Subject: Doors closing tonight for [Your Offer Name]
Body: Gentle but firm last call. Remind them of the transformation. Add a bonus if you have one.`,
	},
}
