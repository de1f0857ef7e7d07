// Package reveal 为审核视图生成文本的逐字显示序列。
package reveal

import (
	"context"
	"time"
)

// Stream 以固定间隔依次发出 text[:1] .. text[:n]，发完即关闭通道。
// ctx 取消后不再有任何发送，通道随之关闭。
func Stream(ctx context.Context, text string, interval time.Duration) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		runes := []rune(text)
		if len(runes) == 0 {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i := 1; i <= len(runes); i++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			select {
			case <-ctx.Done():
				return
			case out <- string(runes[:i]):
			}
		}
	}()

	return out
}
