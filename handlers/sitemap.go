package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"menuswap-api/config"
	"menuswap-api/models"
	"menuswap-api/seo"

	"github.com/gin-gonic/gin"
)

// sitemapPageSize keeps every url set safely under the 50,000 url protocol cap.
const sitemapPageSize = 49000

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapRef struct {
	Loc string `xml:"loc"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapRef `xml:"sitemap"`
}

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

func writeXML(c *gin.Context, v interface{}) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
		return
	}
	c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}

func pages(total int64) int {
	n := int((total + sitemapPageSize - 1) / sitemapPageSize)
	if n < 1 {
		n = 1
	}
	return n
}

// GetSitemapIndex lists the url-set files: static pages plus paginated
// restaurant and dish sets
func GetSitemapIndex(c *gin.Context) {
	var restaurantCount, dishCount int64
	config.DB.Model(&models.Restaurant{}).Count(&restaurantCount)
	config.DB.Model(&models.MenuItem{}).
		Joins("JOIN menus ON menus.id = menu_items.menu_id").
		Where("menus.status = ?", models.StatusApproved).
		Count(&dishCount)

	index := sitemapIndex{XMLNS: sitemapXMLNS}
	index.Sitemaps = append(index.Sitemaps, sitemapRef{Loc: config.BaseURL + "/sitemaps/static.xml"})
	for i := 1; i <= pages(restaurantCount); i++ {
		index.Sitemaps = append(index.Sitemaps, sitemapRef{Loc: fmt.Sprintf("%s/sitemaps/restaurants-%d.xml", config.BaseURL, i)})
	}
	for i := 1; i <= pages(dishCount); i++ {
		index.Sitemaps = append(index.Sitemaps, sitemapRef{Loc: fmt.Sprintf("%s/sitemaps/dishes-%d.xml", config.BaseURL, i)})
	}
	writeXML(c, index)
}

// GetSitemap serves one url-set file: static.xml, restaurants-<n>.xml or
// dishes-<n>.xml
func GetSitemap(c *gin.Context) {
	name := strings.TrimSuffix(c.Param("name"), ".xml")

	if name == "static" {
		set := urlSet{XMLNS: sitemapXMLNS}
		for _, path := range []string{"", "/restaurants", "/search", "/steden"} {
			set.URLs = append(set.URLs, sitemapURL{Loc: config.BaseURL + path})
		}
		writeXML(c, set)
		return
	}

	kind, pageStr, found := strings.Cut(name, "-")
	page, err := strconv.Atoi(pageStr)
	if !found || err != nil || page < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitemap not found"})
		return
	}
	offset := (page - 1) * sitemapPageSize

	switch kind {
	case "restaurants":
		var restaurants []models.Restaurant
		config.DB.Order("id asc").Limit(sitemapPageSize).Offset(offset).Find(&restaurants)
		set := urlSet{XMLNS: sitemapXMLNS}
		for _, r := range restaurants {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/restaurants/%s/%s", config.BaseURL, seo.Slugify(r.City), r.Slug),
				LastMod: r.UpdatedAt.Format(time.RFC3339),
			})
		}
		writeXML(c, set)
	case "dishes":
		type dishURL struct {
			Slug      string
			City      string
			CreatedAt time.Time
		}
		var dishes []dishURL
		config.DB.Model(&models.MenuItem{}).
			Joins("JOIN menus ON menus.id = menu_items.menu_id").
			Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id").
			Where("menus.status = ?", models.StatusApproved).
			Select("menu_items.slug, restaurants.city, menu_items.created_at").
			Order("menu_items.id asc").
			Limit(sitemapPageSize).Offset(offset).
			Scan(&dishes)
		set := urlSet{XMLNS: sitemapXMLNS}
		for _, d := range dishes {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/dish/%s/%s", config.BaseURL, seo.Slugify(d.City), d.Slug),
				LastMod: d.CreatedAt.Format(time.RFC3339),
			})
		}
		writeXML(c, set)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitemap not found"})
	}
}
