package domain

var (
	TERM_LIST_SUCCESS       = "Terms retrieved"
	TERM_LIST_FAILED        = "Failed to retrieve terms"
	TERM_GET_SUCCESS        = "Term retrieved"
	TERM_GET_FAILED         = "Failed to retrieve term"
	TERM_RANDOM_SUCCESS     = "Random term picked"
	TERM_RANDOM_FAILED      = "Failed to pick a random term"
	CATALOG_GET_SUCCESS     = "Catalog retrieved"
	SESSION_CREATE_SUCCESS  = "Session created"
	SESSION_DELETE_SUCCESS  = "Session ended"
	SESSION_DELETE_FAILED   = "Failed to end session"
	PROGRESS_GET_SUCCESS    = "Progress retrieved"
	PROGRESS_GET_FAILED     = "Failed to retrieve progress"
	LEARNED_MARK_SUCCESS    = "Term marked as learned"
	LEARNED_MARK_FAILED     = "Failed to mark term as learned"
	LEARNED_UNMARK_SUCCESS  = "Term unmarked"
	LEARNED_UNMARK_FAILED   = "Failed to unmark term"
	QUIZ_NEXT_SUCCESS       = "Question generated"
	QUIZ_NEXT_FAILED        = "Failed to generate question"
	QUIZ_ANSWER_SUCCESS     = "Answer recorded"
	QUIZ_ANSWER_FAILED      = "Failed to record answer"
	MARKET_PRICES_SUCCESS   = "Prices retrieved"
	MARKET_PRICES_FAILED    = "Failed to retrieve prices"
	MARKET_TRENDING_SUCCESS = "Trending coins retrieved"
	MARKET_UNAVAILABLE      = "Market data is temporarily unavailable"
	TUTOR_ASK_SUCCESS       = "Tutor replied"
	TUTOR_ASK_FAILED        = "Failed to ask the tutor"
)
