package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/wave-fighter/core"
)

// soundCache stores pre-rendered unity gain effects
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
}

func newSoundCache(format beep.Format) *soundCache {
	return &soundCache{format: format}
}

// get returns the cached buffer, rendering it on first use
func (c *soundCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store[st] != nil {
		return c.store[st]
	}

	s := generateSound(st, c.format.SampleRate)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[st] = buf
	return buf
}

// preload renders the sounds fired every few frames
func (c *soundCache) preload() {
	c.get(core.SoundShot)
	c.get(core.SoundHit)
}
