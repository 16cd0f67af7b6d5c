package card

import (
	"net/url"
	"strconv"
	"strings"

	"contribcard/internal/domain"
)

const gitHubURL = "https://github.com/"

// EmailSubject is the subject of shared card emails
const EmailSubject = "My #FirstContribution card"

// ShareTarget is a place a card link can be shared to
type ShareTarget string

const (
	ShareX        ShareTarget = "X"
	ShareFacebook ShareTarget = "Facebook"
	ShareLinkedIn ShareTarget = "LinkedIn"
	ShareWhatsApp ShareTarget = "WhatsApp"
	ShareEmail    ShareTarget = "Email"
	ShareReddit   ShareTarget = "Reddit"
)

// ShareTargets lists targets in display order
var ShareTargets = []ShareTarget{ShareX, ShareFacebook, ShareLinkedIn, ShareWhatsApp, ShareEmail, ShareReddit}

// ShareLink is an intent URL for one target
type ShareLink struct {
	Target ShareTarget
	URL    string
}

// ProfileURL returns the GitHub profile of login
func ProfileURL(login string) string {
	return gitHubURL + url.PathEscape(login)
}

// CardURL returns the public card page of login on siteURL
func CardURL(siteURL, login string) string {
	if siteURL == "" {
		return ""
	}
	return strings.TrimRight(siteURL, "/") + "/" + url.PathEscape(login)
}

// FirstContributionURL links to the commit, issue or pull request that was
// the contributor's first
func FirstContributionURL(fc domain.FirstContribution) string {
	base := gitHubURL + fc.Owner + "/" + fc.Repository + "/"
	switch fc.Kind {
	case domain.KindCommit:
		return base + "commit/" + fc.SHA
	case domain.KindIssue:
		return base + "issues/" + strconv.Itoa(fc.Number)
	case domain.KindPullRequest:
		return base + "pull/" + strconv.Itoa(fc.Number)
	default:
		return base
	}
}

// ShareLinks builds the intent URLs for sharing pageURL with message
func ShareLinks(pageURL, message string) []ShareLink {
	if pageURL == "" {
		return nil
	}
	msg := encodeComponent(message)
	withURL := encodeComponent(message + " " + pageURL)

	links := make([]ShareLink, 0, len(ShareTargets))
	for _, target := range ShareTargets {
		var u string
		switch target {
		case ShareX:
			u = "https://twitter.com/intent/tweet?text=" + msg + "&url=" + pageURL
		case ShareFacebook:
			u = "https://www.facebook.com/sharer/sharer.php?u=" + pageURL + "&quote=" + msg
		case ShareLinkedIn:
			u = "https://www.linkedin.com/sharing/share-offsite/?url=" + pageURL
		case ShareWhatsApp:
			u = "https://web.whatsapp.com/send?text=" + withURL
		case ShareEmail:
			u = "mailto:?subject=" + encodeComponent(EmailSubject) + "&body=" + withURL
		case ShareReddit:
			u = "https://www.reddit.com/submit?url=" + pageURL + "&title=" + msg
		}
		links = append(links, ShareLink{Target: target, URL: u})
	}
	return links
}

// encodeComponent escapes s for a query value with spaces as %20
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
