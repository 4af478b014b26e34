package handler

import (
	"leave_manager/helper"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Package-wide collaborators, injected once from main at startup.
var (
	db    *gorm.DB
	rdb   *redis.Client
	cld   *cloudinary.Cloudinary
	store *helper.Store
	rules *helper.Rules
)

func Init(database *gorm.DB, redisClient *redis.Client, cloud *cloudinary.Cloudinary) {
	db = database
	rdb = redisClient
	cld = cloud
	store = helper.NewStore(database)
	rules = helper.NewRules(store)
}
