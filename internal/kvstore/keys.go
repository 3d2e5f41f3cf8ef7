package kvstore

// CurrentUserKey holds the identity of the active session.
const CurrentUserKey = "soulfulHubUser"

const (
	dataKeyPrefix         = "soulfulHubData_v5_"
	avatarKeyPrefix       = "soulfulHubPic_"
	onboardingKeyPrefix   = "soulfulHubOnboarding_"
	journalKeyPrefix      = "soulfulHubJournal_"
	themeKeyPrefix        = "soulfulHubTheme_"
	customColorsKeyPrefix = "soulfulHubCustomColors_"
)

func DataKey(identity string) string         { return dataKeyPrefix + identity }
func AvatarKey(identity string) string       { return avatarKeyPrefix + identity }
func OnboardingKey(identity string) string   { return onboardingKeyPrefix + identity }
func JournalKey(identity string) string      { return journalKeyPrefix + identity }
func ThemeKey(identity string) string        { return themeKeyPrefix + identity }
func CustomColorsKey(identity string) string { return customColorsKeyPrefix + identity }
