package telegram

// MessageLimit is the largest chunk sent as one Telegram message, kept under
// the API's 4096-character cap to leave room for code-fence framing.
const MessageLimit = 4000

// SplitMessage cuts text into chunks of at most limit runes. Concatenating
// the chunks reproduces the input exactly; no characters are dropped or
// added. Empty input yields no chunks.
func SplitMessage(text string, limit int) []string {
	if text == "" || limit <= 0 {
		return nil
	}
	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
