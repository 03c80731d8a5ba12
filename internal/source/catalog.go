package source

import (
	"regexp"
	"time"

	"newsdigest/internal/domain"
)

var habrTrackingQuery = regexp.MustCompile(`/?\?utm_campaign=.*&utm_source=habrahabr&utm_medium=rss`)

var moscowTZ = time.FixedZone("MSK", 3*60*60)

var (
	filterGeneric         = []domain.FiltrationType{domain.FiltrationGeneric}
	filterSpecific        = []domain.FiltrationType{domain.FiltrationSpecific}
	filterGenericSpecific = []domain.FiltrationType{domain.FiltrationGeneric, domain.FiltrationSpecific}
)

type feedDef struct {
	url        string
	tags       TagNames
	rewrite    func(string) string
	steps      []PostStep
	filtration []domain.FiltrationType
}

// feedCatalog holds the built-in per-source quirks: feed URL defaults,
// tag names, URL rewriting, composable post steps and which keyword
// pools filter the source. Source rows in the database decide which of
// these run and may override the URL via data_url.
var feedCatalog = map[string]feedDef{
	// Dedicated FOSS outlets: everything they publish is on-topic.
	"OpenNetRu":          {url: "https://www.opennet.ru/opennews/opennews_all_utf.rss"},
	"LinuxCom":           {url: "https://www.linux.com/topic/feed/"},
	"OpenSourceCom":      {url: "https://opensource.com/feed"},
	"ItsFossCom":         {url: "https://itsfoss.com/all-blog-posts/feed/"},
	"LinuxOrgRu":         {url: "https://www.linux.org.ru/section-rss.jsp?section=1"},
	"LinuxInsiderCom":    {url: "https://linuxinsider.com/rss-feed"},
	"LosstRu":            {url: "https://losst.ru/rss"},
	"AstraLinuxRu":       {url: "https://astralinux.ru/rss"},
	"BaseAltRu":          {url: "https://www.basealt.ru/feed.rss"},
	"ContainerJournal":   {url: "https://containerjournal.com/feed/"},
	"CncfBlog":           {url: "https://cncf.io/blog/feed"},
	"KubedexCom":         {url: "https://kubedex.com/feed/"},
	"LinuxFoundationOrg": {url: "https://linuxfoundation.org/rss"},

	// Broad tech outlets: only keyword-matching posts are worth triage.
	"AnalyticsIndiaMagCom": {url: "https://analyticsindiamag.com/feed/", filtration: filterGenericSpecific},
	"ZdNetComLinux":        {url: "https://www.zdnet.com/topic/linux/rss.xml", filtration: filterGeneric},
	"ArsTechnicaCom":       {url: "https://arstechnica.com/feed/", filtration: filterSpecific},
	"HackadayCom":          {url: "https://hackaday.com/feed/", filtration: filterSpecific},
	"MashableCom":          {url: "https://mashable.com/rss/", filtration: filterSpecific},
	"SdTimesCom":           {url: "https://sdtimes.com/feed/", filtration: filterSpecific},
	"SecurityBoulevardCom": {url: "https://securityboulevard.com/feed/", filtration: filterSpecific},
	"SiliconAngleCom":      {url: "https://siliconangle.com/feed/", filtration: filterSpecific},
	"TechCrunchCom":        {url: "https://techcrunch.com/feed/", filtration: filterSpecific},
	"TheNextWebCom":        {url: "https://thenextweb.com/feed/", filtration: filterSpecific},
	"VentureBeatCom":       {url: "https://venturebeat.com/feed/", filtration: filterSpecific},

	// Habr hubs share the tracking-query rewrite; the news hub also
	// aggregates reposts of our own published issues.
	"HabrComOpenSource": habrHub("open_source"),
	"HabrComLinux":      habrHub("linux"),
	"HabrComLinuxDev":   habrHub("linux_dev"),
	"HabrComNix":        habrHub("nix"),
	"HabrComDevOps":     habrHub("devops"),
	"HabrComSysAdm":     habrHub("sys_admin"),
	"HabrComGit":        habrHub("git"),
	"HabrComNews": {
		url:        "https://habr.com/ru/rss/news/",
		rewrite:    stripHabrTracking,
		steps:      []PostStep{DropSelfReferences()},
		filtration: filterSpecific,
	},

	// Atom families.
	"YouTubeComAlekseySamoilov": youtubeChannel("UC3kAbMcYr-JEMSb2xX4OdpA"),
	"OpenSourceOnReddit": {
		url:   "https://www.reddit.com/r/opensource/.rss",
		tags:  AtomTags,
		steps: []PostStep{DropSelfReferences()},
	},
	"LinuxOnReddit": {
		url:   "https://www.reddit.com/r/linux/.rss",
		tags:  AtomTags,
		steps: []PostStep{DropSelfReferences()},
	},
}

func habrHub(hub string) feedDef {
	return feedDef{
		url:     "https://habr.com/ru/rss/hub/" + hub + "/all/?fl=ru",
		rewrite: stripHabrTracking,
	}
}

func youtubeChannel(channelID string) feedDef {
	return feedDef{
		url:  "https://www.youtube.com/feeds/videos.xml?channel_id=" + channelID,
		tags: AtomTags,
	}
}

// Builtin returns the registry with every known adapter.
func Builtin() *Registry {
	r := NewRegistry()

	for name, def := range feedCatalog {
		r.Register(name, feedFactory(name, def))
	}

	r.Register("PingvinusRu", func(src domain.Source, opts Options) (Parser, error) {
		cfg := NewsPageConfig{
			Name:       "PingvinusRu",
			SiteURL:    "https://pingvinus.ru",
			PagePath:   "/news",
			TitleSel:   `div.newsdateblock h2 a[href*="/news/"]`,
			DateSel:    "div.newsdateblock span.time",
			DateLayout: "02.01.2006",
			DateZone:   moscowTZ,
		}
		if src.DataURL != nil && *src.DataURL != "" {
			cfg.SiteURL = *src.DataURL
		}
		return NewNewsPageParser(cfg, opts), nil
	})

	return r
}

func feedFactory(name string, def feedDef) Factory {
	return func(src domain.Source, opts Options) (Parser, error) {
		cfg := FeedConfig{
			Name:       name,
			URL:        def.url,
			Tags:       def.tags,
			RewriteURL: def.rewrite,
			Steps:      def.steps,
			Filtration: def.filtration,
		}
		if src.DataURL != nil && *src.DataURL != "" {
			cfg.URL = *src.DataURL
		}
		return NewFeedParser(cfg, opts), nil
	}
}

func stripHabrTracking(url string) string {
	return habrTrackingQuery.ReplaceAllString(url, "")
}
