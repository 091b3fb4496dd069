package game

// Tag vocabularies shared by the catalog, the survey and the filter facets.
// Slices are in the canonical display order.

var Genres = []string{
	"action", "rpg", "shooter", "strategy", "simulation", "adventure",
	"sports", "puzzle", "racing", "horror", "rhythm", "roguelike",
}

var Devices = []string{"phone", "tablet", "pc", "handheld", "console"}

var Platforms = []string{"steam", "epic", "psstore", "eshop", "appstore", "googleplay", "xbox"}

var GenreLabels = map[string]string{
	"action":     "动作",
	"rpg":        "RPG",
	"shooter":    "射击",
	"strategy":   "策略",
	"simulation": "模拟",
	"adventure":  "冒险",
	"sports":     "体育",
	"puzzle":     "解谜",
	"racing":     "竞速",
	"horror":     "恐怖",
	"rhythm":     "音游",
	"roguelike":  "Roguelike",
}

var DeviceLabels = map[string]string{
	"phone":    "手机",
	"tablet":   "平板",
	"pc":       "PC",
	"handheld": "掌机",
	"console":  "主机",
}

var PlatformLabels = map[string]string{
	"steam":      "Steam",
	"epic":       "Epic Games",
	"psstore":    "PlayStation Store",
	"eshop":      "Nintendo eShop",
	"appstore":   "App Store",
	"googleplay": "Google Play",
	"xbox":       "Xbox Store",
}

// Label looks key up in labels and falls back to the key itself, so
// free-form tags from the gateway still render.
func Label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

// Labels maps every key through Label.
func Labels(labels map[string]string, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Label(labels, k)
	}
	return out
}
