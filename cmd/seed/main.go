package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/database"
)

// 板块在应用外创建。用法：
//
//	go run ./cmd/seed -group "go:Go:Всё о Go" -group "news:Новости:"
func main() {
	var defs groupDefs
	flag.Var(&defs, "group", "slug:title:description, repeatable")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	db, err := database.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	groups := repository.NewGroupRepository(db)
	ctx := context.Background()
	for _, g := range defs {
		if err := groups.Create(ctx, g); err != nil {
			panic(fmt.Errorf("seed group %s: %w", g.Slug, err))
		}
		fmt.Printf("group %q ready\n", g.Slug)
	}
}

type groupDefs []*model.Group

func (s *groupDefs) String() string { return fmt.Sprintf("%d groups", len(*s)) }

func (s *groupDefs) Set(v string) error {
	parts := strings.SplitN(v, ":", 3)
	if len(parts) < 2 || parts[0] == "" {
		return fmt.Errorf("want slug:title[:description], got %q", v)
	}
	g := &model.Group{Slug: parts[0], Title: parts[1]}
	if len(parts) == 3 {
		g.Description = parts[2]
	}
	*s = append(*s, g)
	return nil
}
