package api

// TranslateParams carries the POST /v2/translate parameters.
type TranslateParams struct {
	Text   string
	Source string
	Target string
}

// BatchParams carries the POST /v2/translate/batch parameters.
type BatchParams struct {
	Texts  []string
	Source string
	Target string
}

// HTMLParams carries the POST /v2/translate/html parameters.
type HTMLParams struct {
	HTML   string
	Source string
	Target string
}

// EmailParams carries the POST /v2/translate/email parameters.
type EmailParams struct {
	Email  string
	Source string
	Target string
}

// SubtitleParams carries the POST /v2/translate/subtitles parameters.
type SubtitleParams struct {
	Content string
	Format  string
	Source  string
	Target  string
}

// I18nJobParams carries the POST /v2/i18n/create_job parameters. FilePath
// is uploaded as the multipart "file" field.
type I18nJobParams struct {
	FilePath        string
	TargetLanguages []string
	SourceLanguage  string
}
