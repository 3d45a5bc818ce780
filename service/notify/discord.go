package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
}

type discordImpl struct {
	config  DiscordConfig
	discord *discordgo.Session
}

func NewDiscord(config DiscordConfig) (Service, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordImpl{config, discord}, nil
}

func (im *discordImpl) NotifySale(c ctx.Ctx, tx *domain.Transaction) {
	title := "Item sold!"
	if tx.Type == domain.TransactionTypeMysteryBoxPurchase {
		title = "Mystery box opened!"
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Buyer", Value: string(tx.BuyerUsername)},
		{Name: "Price", Value: fmt.Sprintf("%s USDC", tx.PriceUSDC)},
	}
	if !tx.SellerUsername.IsEmpty() {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Seller", Value: string(tx.SellerUsername)})
	}
	for _, item := range tx.Items {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Item", Value: item.Type})
	}

	msg := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("tx %s", tx.TxHash),
		Fields:      fields,
	}

	if _, err := im.discord.ChannelMessageSendEmbed(im.config.ChannelId, msg); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": tx.TxHash,
		}).Warn("failed to send sale notification")
	}
}
