package main

type SampleInput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// sampleInputs is a catalog of representative notes for exercising the
// pipeline: baseline, sentiment, opportunity, high-stakes, creative, and
// vague-inference cases.
var sampleInputs = []SampleInput{
	{
		ID:    "quarterly-check-in",
		Label: "Quarterly check-in (baseline)",
		Value: "Quarterly check-in with Sarah from Bloom-Tech. Relationship remains stable,\n" +
			"and she mentioned she is happy with the current results. However, she asked\n" +
			"for a copy of their current contract just for their internal audit.\n\n" +
			"She also noted that their parent company is pushing for a 15% reduction in\n" +
			"vendor spend across the board by the end of Q1 (March 31). They currently pay\n" +
			"us $8k/month. I suggested we could look at a performance-based model for their\n" +
			"upcoming Spring Rejuvenation campaign in April.\n\n" +
			"She said she would be open to a proposal but needs it by Friday because she is\n" +
			"meeting with her CFO on Monday morning. Also, she mentioned a competitor reached\n" +
			"out to their VP of Marketing last week.",
	},
	{
		ID:    "aggrieved-stakeholder",
		Label: "Aggrieved stakeholder (conflict/sentiment test)",
		Value: "Look, I am extremely disappointed. We spent $20k on the Winter Blast campaign\n" +
			"and the tracking links were broken for the first 48 hours. I have to explain\n" +
			"this to the board on Wednesday morning. I need a full post-mortem report and a\n" +
			"credit for the management fees by tomorrow end of day. If we cannot get this\n" +
			"right, we are going to have to pause all Q2 spending while we evaluate other\n" +
			"agency partners. Contact me on my cell, do not email Jim.",
	},
	{
		ID:    "technical-upsell",
		Label: "Technical upsell (opportunity detection)",
		Value: "The landing pages look great, but our sales team is complaining that they have\n" +
			"to manually export leads into Salesforce every morning. It is a mess. If you\n" +
			"guys can automate that sync, we can move the extra $3,500 we had earmarked for\n" +
			"the print ads over to your retainer instead. We are hoping to have the new\n" +
			"system live before the trade show on March 15th. Let us talk about the API\n" +
			"requirements on our regular Friday call.",
	},
	{
		ID:    "ma-high-stakes",
		Label: "M&A / high stakes strategy (complex context)",
		Value: "Confidential: Bloom-Tech is actually in the middle of being acquired by a\n" +
			"larger holding company. Because of this, we need to standardize all our\n" +
			"marketing reporting by Feb 1st to match their format. Our current monthly\n" +
			"spend is $12k, but the new owners might want to consolidate vendors. We need\n" +
			"to look indispensable right now. I need a summary of our total ROI for the\n" +
			"last 12 months for a meeting on Monday.",
	},
	{
		ID:    "micro-influencer",
		Label: "Micro-influencer expansion (creative/briefing)",
		Value: "We want to pilot a TikTok influencer program. We have a small test budget of\n" +
			"$5k to start. I want to see a list of 10 potential creators by end of week.\n" +
			"If the pilot hits a 3x ROAS, we can scale this to $50k in the summer. No hard\n" +
			"deadlines yet, just exploring for now. Make sure the draft reply sounds really\n" +
			"casual - Sarah likes to keep things low-key.",
	},
	{
		ID:    "short-vague",
		Label: "Short & vague (inference test)",
		Value: "Hey, did we ever decide on the renewal? My boss is asking. I think we\n" +
			"discussed $10k but I cannot find the email. Send over the DocuSign again when\n" +
			"you can. We need to sign by EOM or the project pauses.",
	},
}

func findSample(id string) (SampleInput, bool) {
	for _, sample := range sampleInputs {
		if sample.ID == id {
			return sample, true
		}
	}
	return SampleInput{}, false
}
