package logctx

import (
	"context"
	"multilookup/internal/global"
)

// Appends tags (broad to specific) to a copy of the context's tag list
func AppendCtxTag(ctx context.Context, newTags ...string) (newCtx context.Context) {
	old := GetTagList(ctx)

	tags := make([]string, 0, len(old)+len(newTags))
	tags = append(tags, old...)
	tags = append(tags, newTags...)

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Replaces the tag list, typically with a worker's namespace
func OverwriteCtxTag(ctx context.Context, newList []string) (newCtx context.Context) {
	tags := append([]string(nil), newList...)
	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Returns the context's tag list or an empty list
func GetTagList(ctx context.Context) (tags []string) {
	tags, validAssert := ctx.Value(global.LogTagsKey).([]string)
	if !validAssert {
		tags = []string{}
	}
	return
}
