package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 32

// TextureCache keeps the most recently used textures, such as rendered labels
// and rasterized shapes, and destroys the least recently used one when full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

// GetOrCreate returns the cached texture for key, building and caching it
// with create on a miss.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}
	texture, err := create()
	if err != nil {
		return nil, err
	}
	c.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			destroyTexture(old)
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

// Keys returns the cached keys, least recently used first.
func (c *TextureCache) Keys() []string {
	return append([]string(nil), c.order...)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		destroyTexture(texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		destroyTexture(texture)
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		t.Destroy()
	}
}
