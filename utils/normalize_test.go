package utils

import (
    "sync"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
    assert.Equal(t, "cafe", NormalizeText("Café"))
    assert.Equal(t, "sardi", NormalizeText("SARDI"))
    // already-plain text passes through untouched
    assert.Equal(t, "mujhe bukhar hai", NormalizeText("mujhe bukhar hai"))
}

func TestNormalizeTextConsistentWithKeywordTables(t *testing.T) {
    // both the message and the keyword go through the same folding, so
    // containment works even when vowel signs are stripped
    assert.Contains(t, NormalizeText("मुझे बुखार है"), NormalizeText("बुखार"))
}

func TestNormalizeTextConcurrent(t *testing.T) {
    inputs := []string{
        "Café au lait",
        "मुझे बुखार है",
        "seene mein dard ho raha hai",
        "মাথা ব্যথা করছে",
        "எனக்கு தலைவலி",
    }
    want := make([]string, len(inputs))
    for i, in := range inputs {
        want[i] = NormalizeText(in)
    }

    var wg sync.WaitGroup
    for g := 0; g < 8; g++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for n := 0; n < 200; n++ {
                for i, in := range inputs {
                    if got := NormalizeText(in); got != want[i] {
                        t.Errorf("NormalizeText(%q) = %q, want %q", in, got, want[i])
                        return
                    }
                }
            }
        }()
    }
    wg.Wait()
}
