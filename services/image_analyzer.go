package services

import (
    "bytes"
    "fmt"
    "image"
    "log"
    "math"
    "strings"

    _ "image/jpeg"
    _ "image/png"

    _ "golang.org/x/image/webp"

    "swasthya-chatbot-backend/models"
)

var allowedImageFormats = map[string]struct{}{
    "jpeg": {},
    "png":  {},
    "webp": {},
}

// ImageAnalyzer runs the two-tier skin image pipeline. The full tier
// computes color and texture statistics over the decoded pixels; if it
// fails for any reason the simplified tier still returns generic
// guidance, so a decodable image never produces a hard error.
type ImageAnalyzer struct {
    maxBytes   int64
    minWidth   int
    minHeight  int
    translator *Translator
}

func NewImageAnalyzer(maxBytes int64, minWidth, minHeight int, translator *Translator) *ImageAnalyzer {
    return &ImageAnalyzer{
        maxBytes:   maxBytes,
        minWidth:   minWidth,
        minHeight:  minHeight,
        translator: translator,
    }
}

// Validate checks the raw image bytes against the size, format and
// resolution limits. It runs before any pixel work, so an oversized
// payload is rejected without decoding it. Failures are always
// *models.ValidationError.
func (ia *ImageAnalyzer) Validate(data []byte) error {
    if len(data) == 0 {
        return &models.ValidationError{Kind: models.ValidationEmpty}
    }
    if int64(len(data)) > ia.maxBytes {
        return &models.ValidationError{Kind: models.ValidationTooLarge}
    }

    cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
    if err != nil {
        return &models.ValidationError{Kind: models.ValidationBadFormat}
    }
    if _, ok := allowedImageFormats[format]; !ok {
        return &models.ValidationError{Kind: models.ValidationBadFormat}
    }
    if cfg.Width < ia.minWidth || cfg.Height < ia.minHeight {
        return &models.ValidationError{Kind: models.ValidationTooSmall}
    }
    return nil
}

// Analyze validates the image and runs the pipeline, returning a
// localized result message. Validation failures come back as
// *models.ValidationError; once validation passes the only error is
// *models.TerminalProcessingError, when even the simplified tier cannot
// decode the image.
func (ia *ImageAnalyzer) Analyze(data []byte, lang models.Language) (models.AnalysisResult, error) {
    if err := ia.Validate(data); err != nil {
        return models.AnalysisResult{}, err
    }

    stats, err := ia.fullAnalysis(data)
    if err == nil {
        findings, recommendations := ia.interpretStats(stats, lang)
        message := ia.translator.Render(lang, "image_full_result", map[string]string{
            "findings":        strings.Join(findings, "\n"),
            "recommendations": strings.Join(recommendations, "\n"),
        })
        return models.AnalysisResult{Success: true, Message: message, Mode: models.AnalysisModeFull}, nil
    }

    log.Printf("Full image analysis failed, falling back to simplified: %v", err)

    if _, _, decErr := image.DecodeConfig(bytes.NewReader(data)); decErr != nil {
        return models.AnalysisResult{}, &models.TerminalProcessingError{Cause: decErr}
    }
    message := ia.translator.Render(lang, "image_simplified_result", nil)
    return models.AnalysisResult{Success: true, Message: message, Mode: models.AnalysisModeSimplified}, nil
}

type imageStats struct {
    meanR, meanG, meanB float64
    rednessScore        float64
    redFraction         float64
    smoothness          float64
    edgeDensity         float64
}

// fullAnalysis decodes the image and derives the heuristic statistics.
// A panic inside the decoder or the pixel loop is recovered and
// reported as an error so the caller can degrade to the simplified tier.
func (ia *ImageAnalyzer) fullAnalysis(data []byte) (stats imageStats, err error) {
    defer func() {
        if r := recover(); r != nil {
            err = fmt.Errorf("analysis panic: %v", r)
        }
    }()

    img, _, err := image.Decode(bytes.NewReader(data))
    if err != nil {
        return imageStats{}, fmt.Errorf("decode: %w", err)
    }

    return computeStats(img), nil
}

// computeStats walks the pixels on a stride so large photos stay cheap.
func computeStats(img image.Image) imageStats {
    bounds := img.Bounds()
    width := bounds.Dx()
    height := bounds.Dy()

    stepX := width / 200
    if stepX < 1 {
        stepX = 1
    }
    stepY := height / 200
    if stepY < 1 {
        stepY = 1
    }

    var (
        sumR, sumG, sumB float64
        sumGray, sumSq   float64
        redDominant      int
        edges            int
        samples          int
    )

    for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
        var prevGray float64
        first := true
        for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
            r16, g16, b16, _ := img.At(x, y).RGBA()
            r := float64(r16 >> 8)
            g := float64(g16 >> 8)
            b := float64(b16 >> 8)

            sumR += r
            sumG += g
            sumB += b
            if r > g+30 && r > b+30 {
                redDominant++
            }

            gray := 0.299*r + 0.587*g + 0.114*b
            sumGray += gray
            sumSq += gray * gray
            if !first && math.Abs(gray-prevGray) > 30 {
                edges++
            }
            prevGray = gray
            first = false
            samples++
        }
    }

    if samples == 0 {
        return imageStats{}
    }

    n := float64(samples)
    meanGray := sumGray / n
    variance := sumSq/n - meanGray*meanGray
    if variance < 0 {
        variance = 0
    }

    stats := imageStats{
        meanR:       sumR / n,
        meanG:       sumG / n,
        meanB:       sumB / n,
        redFraction: float64(redDominant) / n,
        edgeDensity: float64(edges) / n,
    }
    stats.rednessScore = stats.meanR - (stats.meanG+stats.meanB)/2
    // standard deviation of 0 is perfectly smooth, 64+ is very busy
    stats.smoothness = 1 - math.Min(math.Sqrt(variance)/64, 1)
    return stats
}

// interpretStats turns the raw numbers into user-facing observations,
// each rendered from a template key so the full-mode result comes out
// entirely in the session language. Thresholds are deliberately
// conservative; the output is guidance, not a diagnosis.
func (ia *ImageAnalyzer) interpretStats(stats imageStats, lang models.Language) (findings, recommendations []string) {
    bullet := func(key string, slots map[string]string) string {
        return "• " + ia.translator.Render(lang, key, slots)
    }

    if stats.rednessScore > 30 {
        findings = append(findings, bullet("image_finding_redness_strong", nil))
        recommendations = append(recommendations, bullet("image_reco_redness_strong", nil))
    } else if stats.rednessScore > 15 {
        findings = append(findings, bullet("image_finding_redness_mild", nil))
        recommendations = append(recommendations, bullet("image_reco_redness_mild", nil))
    }

    if stats.redFraction > 0.3 {
        findings = append(findings, bullet("image_finding_inflamed", map[string]string{
            "percent": fmt.Sprintf("%d", int(stats.redFraction*100)),
        }))
        recommendations = append(recommendations, bullet("image_reco_inflamed", nil))
    }

    if stats.edgeDensity > 0.15 || stats.smoothness < 0.4 {
        findings = append(findings, bullet("image_finding_texture", nil))
        recommendations = append(recommendations, bullet("image_reco_texture", nil))
    }

    if len(findings) == 0 {
        findings = append(findings, bullet("image_finding_none", nil))
        recommendations = append(recommendations, bullet("image_reco_none", nil))
    }

    recommendations = append(recommendations, bullet("image_reco_doctor", nil))
    return findings, recommendations
}
