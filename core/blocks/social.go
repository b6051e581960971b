package blocks

import "sort"

// Platform identifies a social network of a SocialIcon.
// Values outside the known set are kept and rendered with an empty icon source.
type Platform string

// Known platforms.
const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformX         Platform = "x"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformPinterest Platform = "pinterest"
	PlatformTikTok    Platform = "tiktok"
	PlatformGitHub    Platform = "github"
)

// platformIcons is read-only after init.
var platformIcons = map[Platform]string{
	PlatformFacebook:  "https://cdn-icons-png.flaticon.com/512/124/124010.png",
	PlatformTwitter:   "https://cdn-icons-png.flaticon.com/512/12107/12107611.png",
	PlatformX:         "https://cdn-icons-png.flaticon.com/512/12107/12107611.png",
	PlatformInstagram: "https://cdn-icons-png.flaticon.com/512/174/174855.png",
	PlatformLinkedIn:  "https://cdn-icons-png.flaticon.com/512/174/174857.png",
	PlatformYouTube:   "https://cdn-icons-png.flaticon.com/512/174/174883.png",
	PlatformPinterest: "https://cdn-icons-png.flaticon.com/512/174/174863.png",
	PlatformTikTok:    "https://cdn-icons-png.flaticon.com/512/3116/3116491.png",
	PlatformGitHub:    "https://cdn-icons-png.flaticon.com/512/733/733553.png",
}

// IconURL returns the hosted icon for the platform, or "" for unknown platforms.
func (p Platform) IconURL() string {
	return platformIcons[p]
}

// Known reports whether the platform has an icon.
func (p Platform) Known() bool {
	_, ok := platformIcons[p]
	return ok
}

// Platforms lists the known platforms in lexical order.
func Platforms() []Platform {
	out := make([]Platform, 0, len(platformIcons))
	for p := range platformIcons {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
