package client

import (
	"errors"
	"net/url"
	"strings"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// Platform classifies a device for AR activation purposes.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformIOS
	PlatformAndroid
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformAndroid:
		return "Android"
	default:
		return "Other"
	}
}

var (
	// ErrARUnsupported means the device has no native AR entry point;
	// callers show a transient warning instead of activating anything.
	ErrARUnsupported = errors.New("device does not support native AR")

	// ErrNoModel means the dish has no 3D asset; callers show a
	// "no AR available" state rather than erroring.
	ErrNoModel = errors.New("dish has no 3D model")
)

// ClassifyPlatform buckets a user-agent string into iOS, Android, or
// Other. Pure string inspection, no browser required.
func ClassifyPlatform(userAgent string) Platform {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return PlatformIOS
	case strings.Contains(ua, "android"):
		return PlatformAndroid
	default:
		return PlatformOther
	}
}

// Launch describes how to hand a dish's 3D asset to the platform AR
// viewer.
type Launch struct {
	// URL is what the caller should navigate to: the raw asset for an
	// AR Quick Look anchor on iOS, a Scene Viewer intent URL on Android.
	URL string
	// QuickLook is set when the URL must be opened through an <a rel="ar">
	// anchor rather than a plain navigation.
	QuickLook bool
}

// ARLaunch picks the platform AR entry point for a dish. iOS prefers the
// USD asset and falls back to the primary model; Android always takes the
// primary model through Scene Viewer with fallbackURL embedded in the
// intent. The in-browser WebXR path is independent of this decision and
// self-reports support, so it never goes through here.
func ARLaunch(platform Platform, dish models.Dish, fallbackURL string) (Launch, error) {
	if platform == PlatformOther {
		return Launch{}, ErrARUnsupported
	}

	modelURL := dish.ModelURL
	if platform == PlatformIOS && dish.IOSModelURL != "" {
		modelURL = dish.IOSModelURL
	}
	if modelURL == "" {
		return Launch{}, ErrNoModel
	}

	if platform == PlatformIOS {
		return Launch{URL: modelURL, QuickLook: true}, nil
	}

	intentURL := "intent://arvr.google.com/scene-viewer/1.0?file=" + url.QueryEscape(modelURL) +
		"&mode=ar_preferred#Intent;scheme=https;package=com.google.android.googlequicksearchbox;" +
		"action=android.intent.action.VIEW;S.browser_fallback_url=" + url.QueryEscape(fallbackURL) + ";end;"
	return Launch{URL: intentURL}, nil
}
