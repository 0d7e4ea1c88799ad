package dto

// ExtractRequestDTO carries an uploaded document for AI question extraction.
type ExtractRequestDTO struct {
	PDFBase64 string `json:"pdf_base64" binding:"required"`
	FileName  string `json:"file_name"`
}

// ExtractedQuestionDTO is one MCQ pulled out of the document. CorrectOption is
// nil when the document carries no answer key for it.
type ExtractedQuestionDTO struct {
	QuestionText  string  `json:"question_text"`
	OptionA       string  `json:"option_a"`
	OptionB       string  `json:"option_b"`
	OptionC       string  `json:"option_c"`
	OptionD       string  `json:"option_d"`
	CorrectOption *string `json:"correct_option"`
}

// ExtractResultDTO is the extraction response the authoring UI prefills from.
type ExtractResultDTO struct {
	Title      string                 `json:"title"`
	Questions  []ExtractedQuestionDTO `json:"questions"`
	HasAnswers bool                   `json:"has_answers"`
}
