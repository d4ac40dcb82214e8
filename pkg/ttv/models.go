package ttv

// Voice design model IDs accepted by the API. The service falls back to
// ModelMultilingualTTVv2 when a request carries no model_id; the client never
// fills it in on its own.
const (
	ModelMultilingualTTVv2 = "eleven_multilingual_ttv_v2"
	ModelTTVv3             = "eleven_ttv_v3"
)

// Output formats, named codec_sample_rate_bitrate. PCM above 22.05kHz and
// the 192kbps MP3 tier require a paid plan.
const (
	// OutputFormatDefault is what the service applies when a request names no
	// output format; the client never fills it in on its own.
	OutputFormatDefault = OutputFormatMP3_44100_128

	OutputFormatMP3_22050_32  = "mp3_22050_32"
	OutputFormatMP3_44100_32  = "mp3_44100_32"
	OutputFormatMP3_44100_64  = "mp3_44100_64"
	OutputFormatMP3_44100_96  = "mp3_44100_96"
	OutputFormatMP3_44100_128 = "mp3_44100_128"
	OutputFormatMP3_44100_192 = "mp3_44100_192"
	OutputFormatPCM_8000      = "pcm_8000"
	OutputFormatPCM_16000     = "pcm_16000"
	OutputFormatPCM_22050     = "pcm_22050"
	OutputFormatPCM_24000     = "pcm_24000"
	OutputFormatPCM_44100     = "pcm_44100"
	OutputFormatPCM_48000     = "pcm_48000"
	OutputFormatULaw_8000     = "ulaw_8000"
	OutputFormatALaw_8000     = "alaw_8000"
	OutputFormatOpus_48000_32 = "opus_48000_32"
	OutputFormatOpus_48000_64 = "opus_48000_64"
	OutputFormatOpus_48000_96 = "opus_48000_96"
)
