package ttv

import "github.com/curaious/ttv/internal/utils"

// VoiceCategory classifies how a voice came to exist in the account.
type VoiceCategory string

const (
	VoiceCategoryGenerated    VoiceCategory = "generated"
	VoiceCategoryCloned       VoiceCategory = "cloned"
	VoiceCategoryPremade      VoiceCategory = "premade"
	VoiceCategoryProfessional VoiceCategory = "professional"
	VoiceCategoryFamous       VoiceCategory = "famous"
	VoiceCategoryHighQuality  VoiceCategory = "high_quality"
)

// SeparationStatus is the progress of speaker separation on a sample.
type SeparationStatus string

const (
	SeparationStatusNotStarted SeparationStatus = "not_started"
	SeparationStatusPending    SeparationStatus = "pending"
	SeparationStatusCompleted  SeparationStatus = "completed"
	SeparationStatusFailed     SeparationStatus = "failed"
)

// FineTuningState is the progress of fine tuning for one model.
type FineTuningState string

const (
	FineTuningStateNotStarted FineTuningState = "not_started"
	FineTuningStateQueued     FineTuningState = "queued"
	FineTuningStateFineTuning FineTuningState = "fine_tuning"
	FineTuningStateFineTuned  FineTuningState = "fine_tuned"
	FineTuningStateFailed     FineTuningState = "failed"
	FineTuningStateDelayed    FineTuningState = "delayed"
)

// SharingStatus is the library-sharing state of a voice.
type SharingStatus string

const (
	SharingStatusEnabled        SharingStatus = "enabled"
	SharingStatusDisabled       SharingStatus = "disabled"
	SharingStatusCopied         SharingStatus = "copied"
	SharingStatusCopiedDisabled SharingStatus = "copied_disabled"
)

// ReviewStatus is the moderation review state of a shared voice.
type ReviewStatus string

const (
	ReviewStatusNotRequested       ReviewStatus = "not_requested"
	ReviewStatusPending            ReviewStatus = "pending"
	ReviewStatusDeclined           ReviewStatus = "declined"
	ReviewStatusAllowed            ReviewStatus = "allowed"
	ReviewStatusAllowedWithChanges ReviewStatus = "allowed_with_changes"
)

// ResourceType identifies what a reader restriction applies to.
type ResourceType string

const (
	ResourceTypeRead       ResourceType = "read"
	ResourceTypeCollection ResourceType = "collection"
)

// SafetyControl is the abuse-prevention measure attached to a voice.
type SafetyControl string

const (
	SafetyControlNone              SafetyControl = "NONE"
	SafetyControlBan               SafetyControl = "BAN"
	SafetyControlCaptcha           SafetyControl = "CAPTCHA"
	SafetyControlEnterpriseBan     SafetyControl = "ENTERPRISE_BAN"
	SafetyControlEnterpriseCaptcha SafetyControl = "ENTERPRISE_CAPTCHA"
)

// Voice is the full persisted voice object returned when a designed voice is
// created. Most fields are optional on the wire and stay nil when the API
// omits them.
type Voice struct {
	VoiceID                 string             `json:"voice_id"`
	Name                    *string            `json:"name,omitempty"`
	Samples                 []Sample           `json:"samples,omitempty"`
	Category                *VoiceCategory     `json:"category,omitempty"`
	FineTuning              *FineTuning        `json:"fine_tuning,omitempty"`
	Labels                  map[string]string  `json:"labels,omitempty"`
	Description             *string            `json:"description,omitempty"`
	PreviewURL              *string            `json:"preview_url,omitempty"`
	AvailableForTiers       []string           `json:"available_for_tiers,omitempty"`
	Settings                *VoiceSettings     `json:"settings,omitempty"`
	Sharing                 *VoiceSharing      `json:"sharing,omitempty"`
	HighQualityBaseModelIDs []string           `json:"high_quality_base_model_ids,omitempty"`
	VerifiedLanguages       []VerifiedLanguage `json:"verified_languages,omitempty"`
	SafetyControl           *SafetyControl     `json:"safety_control,omitempty"`
	VoiceVerification       *VoiceVerification `json:"voice_verification,omitempty"`
	PermissionOnResource    *string            `json:"permission_on_resource,omitempty"`
	IsOwner                 *bool              `json:"is_owner,omitempty"`
	IsLegacy                *bool              `json:"is_legacy,omitempty"`
	IsMixed                 *bool              `json:"is_mixed,omitempty"`
	FavoritedAtUnix         *int64             `json:"favorited_at_unix,omitempty"`
	CreatedAtUnix           *int64             `json:"created_at_unix,omitempty"`
}

// IsReady reports whether the voice can be used for synthesis right away,
// i.e. it either needs no verification or has already passed it.
func (v *Voice) IsReady() bool {
	if v.VoiceVerification == nil {
		return true
	}

	return !v.VoiceVerification.RequiresVerification || v.VoiceVerification.IsVerified
}

// TotalSampleDuration sums the duration of every sample attached to the
// voice, in seconds.
func (v *Voice) TotalSampleDuration() float64 {
	var total float64
	for _, s := range v.Samples {
		if s.DurationSecs != nil {
			total += *s.DurationSecs
		}
	}

	return total
}

// IsShared reports whether the voice is currently shared in the voice library.
func (v *Voice) IsShared() bool {
	return v.Sharing != nil && v.Sharing.Status != nil && *v.Sharing.Status == SharingStatusEnabled
}

// Sample is one audio sample a voice was built from.
type Sample struct {
	SampleID                *string            `json:"sample_id,omitempty"`
	FileName                *string            `json:"file_name,omitempty"`
	MimeType                *string            `json:"mime_type,omitempty"`
	SizeBytes               *int64             `json:"size_bytes,omitempty"`
	Hash                    *string            `json:"hash,omitempty"`
	DurationSecs            *float64           `json:"duration_secs,omitempty"`
	RemoveBackgroundNoise   *bool              `json:"remove_background_noise,omitempty"`
	HasIsolatedAudio        *bool              `json:"has_isolated_audio,omitempty"`
	HasIsolatedAudioPreview *bool              `json:"has_isolated_audio_preview,omitempty"`
	SpeakerSeparation       *SpeakerSeparation `json:"speaker_separation,omitempty"`
	TrimStart               *int64             `json:"trim_start,omitempty"`
	TrimEnd                 *int64             `json:"trim_end,omitempty"`
}

type SpeakerSeparation struct {
	VoiceID            string             `json:"voice_id"`
	SampleID           string             `json:"sample_id"`
	Status             SeparationStatus   `json:"status"`
	Speakers           map[string]Speaker `json:"speakers,omitempty"`
	SelectedSpeakerIDs []string           `json:"selected_speaker_ids,omitempty"`
}

type Speaker struct {
	SpeakerID    string      `json:"speaker_id"`
	DurationSecs float64     `json:"duration_secs"`
	Utterances   []Utterance `json:"utterances,omitempty"`
}

type Utterance struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// FineTuning describes per-model fine-tuning progress of a voice.
type FineTuning struct {
	IsAllowedToFineTune                    *bool                      `json:"is_allowed_to_fine_tune,omitempty"`
	State                                  map[string]FineTuningState `json:"state,omitempty"`
	VerificationFailures                   []string                   `json:"verification_failures,omitempty"`
	VerificationAttemptsCount              *int64                     `json:"verification_attempts_count,omitempty"`
	ManualVerificationRequested            *bool                      `json:"manual_verification_requested,omitempty"`
	Language                               *string                    `json:"language,omitempty"`
	Progress                               map[string]float64         `json:"progress,omitempty"`
	Message                                map[string]string          `json:"message,omitempty"`
	DatasetDurationSeconds                 *float64                   `json:"dataset_duration_seconds,omitempty"`
	VerificationAttempts                   []VerificationAttempt      `json:"verification_attempts,omitempty"`
	SliceIDs                               []string                   `json:"slice_ids,omitempty"`
	ManualVerification                     *ManualVerification        `json:"manual_verification,omitempty"`
	MaxVerificationAttempts                *int64                     `json:"max_verification_attempts,omitempty"`
	NextMaxVerificationAttemptsResetUnixMS *int64                     `json:"next_max_verification_attempts_reset_unix_ms,omitempty"`
	FinetuningState                        any                        `json:"finetuning_state,omitempty"`
}

type VerificationAttempt struct {
	Text                string     `json:"text"`
	DateUnix            int64      `json:"date_unix"`
	Accepted            bool       `json:"accepted"`
	Similarity          float64    `json:"similarity"`
	LevenshteinDistance float64    `json:"levenshtein_distance"`
	Recording           *Recording `json:"recording,omitempty"`
}

type Recording struct {
	RecordingID    string `json:"recording_id"`
	MimeType       string `json:"mime_type"`
	SizeBytes      int64  `json:"size_bytes"`
	UploadDateUnix int64  `json:"upload_date_unix"`
	Transcription  string `json:"transcription"`
}

type ManualVerification struct {
	ExtraText       string             `json:"extra_text"`
	RequestTimeUnix int64              `json:"request_time_unix"`
	Files           []VerificationFile `json:"files"`
}

type VerificationFile struct {
	FileID         string `json:"file_id"`
	FileName       string `json:"file_name"`
	MimeType       string `json:"mime_type"`
	SizeBytes      int64  `json:"size_bytes"`
	UploadDateUnix int64  `json:"upload_date_unix"`
}

// VoiceSettings are the synthesis parameters stored with a voice.
type VoiceSettings struct {
	Stability       *float64 `json:"stability,omitempty"`
	UseSpeakerBoost *bool    `json:"use_speaker_boost,omitempty"`
	SimilarityBoost *float64 `json:"similarity_boost,omitempty"`
	Style           *float64 `json:"style,omitempty"`
	Speed           *float64 `json:"speed,omitempty"`
}

// DefaultVoiceSettings returns the settings the service assigns to a freshly
// created voice.
func DefaultVoiceSettings() *VoiceSettings {
	return &VoiceSettings{
		Stability:       utils.Ptr(0.5),
		UseSpeakerBoost: utils.Ptr(true),
		SimilarityBoost: utils.Ptr(0.5),
		Style:           utils.Ptr(0.0),
		Speed:           utils.Ptr(1.0),
	}
}

// VoiceSharing describes how a voice is exposed in the voice library.
type VoiceSharing struct {
	Status                  *SharingStatus      `json:"status,omitempty"`
	HistoryItemSampleID     *string             `json:"history_item_sample_id,omitempty"`
	DateUnix                *int64              `json:"date_unix,omitempty"`
	WhitelistedEmails       []string            `json:"whitelisted_emails,omitempty"`
	PublicOwnerID           *string             `json:"public_owner_id,omitempty"`
	OriginalVoiceID         *string             `json:"original_voice_id,omitempty"`
	FinancialRewardsEnabled *bool               `json:"financial_rewards_enabled,omitempty"`
	FreeUsersAllowed        *bool               `json:"free_users_allowed,omitempty"`
	LiveModerationEnabled   *bool               `json:"live_moderation_enabled,omitempty"`
	Rate                    *float64            `json:"rate,omitempty"`
	FiatRate                *float64            `json:"fiat_rate,omitempty"`
	NoticePeriod            *int64              `json:"notice_period,omitempty"`
	DisableAtUnix           *int64              `json:"disable_at_unix,omitempty"`
	VoiceMixingAllowed      *bool               `json:"voice_mixing_allowed,omitempty"`
	Featured                *bool               `json:"featured,omitempty"`
	Category                *VoiceCategory      `json:"category,omitempty"`
	ReaderAppEnabled        *bool               `json:"reader_app_enabled,omitempty"`
	ImageURL                *string             `json:"image_url,omitempty"`
	BanReason               *string             `json:"ban_reason,omitempty"`
	LikedByCount            *int64              `json:"liked_by_count,omitempty"`
	ClonedByCount           *int64              `json:"cloned_by_count,omitempty"`
	Name                    *string             `json:"name,omitempty"`
	Description             *string             `json:"description,omitempty"`
	Labels                  map[string]string   `json:"labels,omitempty"`
	ReviewStatus            *ReviewStatus       `json:"review_status,omitempty"`
	ReviewMessage           *string             `json:"review_message,omitempty"`
	EnabledInLibrary        *bool               `json:"enabled_in_library,omitempty"`
	InstagramUsername       *string             `json:"instagram_username,omitempty"`
	TwitterUsername         *string             `json:"twitter_username,omitempty"`
	YoutubeUsername         *string             `json:"youtube_username,omitempty"`
	TiktokUsername          *string             `json:"tiktok_username,omitempty"`
	ModerationCheck         *ModerationCheck    `json:"moderation_check,omitempty"`
	ReaderRestrictedOn      []ReaderRestriction `json:"reader_restricted_on,omitempty"`
}

type ModerationCheck struct {
	DateCheckedUnix  *int64    `json:"date_checked_unix,omitempty"`
	NameValue        *string   `json:"name_value,omitempty"`
	NameCheck        *bool     `json:"name_check,omitempty"`
	DescriptionValue *string   `json:"description_value,omitempty"`
	DescriptionCheck *bool     `json:"description_check,omitempty"`
	SampleIDs        []string  `json:"sample_ids,omitempty"`
	SampleChecks     []float64 `json:"sample_checks,omitempty"`
	CaptchaIDs       []string  `json:"captcha_ids,omitempty"`
	CaptchaChecks    []float64 `json:"captcha_checks,omitempty"`
}

type ReaderRestriction struct {
	ResourceType ResourceType `json:"resource_type"`
	ResourceID   string       `json:"resource_id"`
}

type VerifiedLanguage struct {
	Language   string  `json:"language"`
	ModelID    string  `json:"model_id"`
	Accent     *string `json:"accent,omitempty"`
	Locale     *string `json:"locale,omitempty"`
	PreviewURL *string `json:"preview_url,omitempty"`
}

// VoiceVerification tracks whether the voice owner has proven they may use it.
type VoiceVerification struct {
	RequiresVerification      bool                  `json:"requires_verification"`
	IsVerified                bool                  `json:"is_verified"`
	VerificationFailures      []string              `json:"verification_failures"`
	VerificationAttemptsCount int64                 `json:"verification_attempts_count"`
	Language                  *string               `json:"language,omitempty"`
	VerificationAttempts      []VerificationAttempt `json:"verification_attempts,omitempty"`
}
