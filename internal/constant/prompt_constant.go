package constant

const (
	AssistantInstructions = `You are a data analyst assistant. Answer questions about the user's uploaded tabular datasets using the attached documents. Be concise and factual; only use information present in the documents.`

	// FollowUpSuffix is appended to every composed user prompt. The answer
	// parser depends on the marker and the fenced JSON block it requests.
	FollowUpSuffix = `

After your answer, append a section titled "Follow Up Questions" containing a strict JSON array of objects with a single "question" field, wrapped in a fenced json code block. Example:
Follow Up Questions:
` + "```json\n[{\"question\":\"...\"}]\n```"

	// QuickInsightPrompt drives the batch generation mode. The bracket
	// array extraction tolerates prose around the array but needs the
	// array itself to be well formed.
	QuickInsightPrompt = `Analyze the following datasets: %s.
Produce at least eight distinct insights about the data. Respond with a JSON array of objects, each with a "title" field (short headline) and a "description" field (one or two sentences). Output only the JSON array.`

	// TitlePrompt produces a short conversation title from the opening
	// exchange.
	TitlePrompt = `Generate a short title (at most six words, no quotes, no trailing punctuation) summarizing this conversation opener:

%s`

	FilenamesContextPrefix = "The user is asking about the following files: %s.\n\n"
)
